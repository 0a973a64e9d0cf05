// Package models contain needed models
package models

// TranslateRequest represents the request for translating a message.
// When Key is set the message is translated with a one-off translator built
// from Key and Alphabet instead of the shared one.
type TranslateRequest struct {
	Message  string `json:"message"`
	Mode     string `json:"mode" binding:"required,oneof=encrypt decrypt"`
	Key      string `json:"key,omitempty"`
	Alphabet string `json:"alphabet,omitempty"`
}

// TranslateResponse represents the response after translation
type TranslateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Mode    string `json:"mode,omitempty"`
	Result  string `json:"result,omitempty"`
}

// KeyRequest represents the request for changing the key
type KeyRequest struct {
	Key string `json:"key" binding:"required"`
}

// KeyResponse represents the response after the key was changed
type KeyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Shifts  []int  `json:"shifts,omitempty"`
}

// AlphabetRequest represents the request for changing the alphabet
type AlphabetRequest struct {
	Alphabet string `json:"alphabet" binding:"required"`
}

// AlphabetResponse represents the current alphabet
type AlphabetResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Alphabet string `json:"alphabet,omitempty"`
	Length   int    `json:"length,omitempty"`
}
