//go:build !no_scripts

package script

// Meta is the optional JSON header on the first line of a script:
//
//	-- {"name": "door watcher", "enabled": true}
type Meta struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Enabled     bool   `json:"enabled"`
}

// Script is one .lua file from the scripts directory.
type Script struct {
	ID       string `json:"id"` // filename stem (no .lua)
	Meta     Meta   `json:"meta"`
	Code     string `json:"code"` // Lua source without the header line
	FilePath string `json:"-"`
}
