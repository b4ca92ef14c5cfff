package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
	Count     int   `json:"count,omitempty"`
}

// GenerateResponse represents a password generation response.
// Passwords is only set when more than one password was requested.
type GenerateResponse struct {
	Password  string   `json:"password"`
	Passwords []string `json:"passwords,omitempty"`
	Length    int      `json:"length"`
	Classes   []string `json:"classes"`
}

// Charset describes one selectable character class.
type Charset struct {
	Name     string `json:"name"`
	Alphabet string `json:"alphabet"`
	Size     int    `json:"size"`
}

// CharsetsResponse lists the selectable classes and the length bounds.
type CharsetsResponse struct {
	Charsets      []Charset `json:"charsets"`
	MinLength     int       `json:"min_length"`
	MaxLength     int       `json:"max_length"`
	DefaultLength int       `json:"default_length"`
}
