package models

// VaultContainer is the on-disk representation of a vault file.
//
// Salt and Data are base64url strings. Iterations records the PBKDF2 cost the
// Data blob was sealed with; a zero value means the file predates the field.
type VaultContainer struct {
	Salt       string `json:"salt"`
	Iterations int    `json:"iterations,omitempty"`
	Data       string `json:"data"`
}

// Empty reports whether the container carries neither salt nor data.
func (c VaultContainer) Empty() bool {
	return c.Salt == "" && c.Data == ""
}
