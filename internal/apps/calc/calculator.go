package calc

// ErrorText is shown in place of a result when evaluation fails.
const ErrorText = "Error"

// Calculator holds the expression being typed and what the display shows.
type Calculator struct {
	buffer  string
	display string
	err     error
}

// Append adds s to the expression.
func (c *Calculator) Append(s string) {
	c.buffer += s
	c.display = c.buffer
	c.err = nil
}

// Clear empties the expression and the display.
func (c *Calculator) Clear() {
	c.buffer = ""
	c.display = ""
	c.err = nil
}

// Backspace removes the last character of the expression.
func (c *Calculator) Backspace() {
	if c.buffer == "" {
		return
	}
	r := []rune(c.buffer)
	c.buffer = string(r[:len(r)-1])
	c.display = c.buffer
	c.err = nil
}

// Calculate evaluates the expression. On success the result replaces the
// expression so typing continues from it; on failure the display shows
// ErrorText and the expression is discarded.
func (c *Calculator) Calculate() {
	v, err := Eval(c.buffer)
	if err != nil {
		c.buffer = ""
		c.display = ErrorText
		c.err = err
		return
	}
	c.buffer = Format(v)
	c.display = c.buffer
	c.err = nil
}

// Buffer returns the expression being built.
func (c *Calculator) Buffer() string {
	return c.buffer
}

// Display returns the text the display shows.
func (c *Calculator) Display() string {
	return c.display
}

// Err returns the error from the last Calculate, if it failed.
func (c *Calculator) Err() error {
	return c.err
}
