// Package ggufmeta edits the metadata of GGUF model files.
//
// Each function opens the file, performs one operation and, for mutations,
// rewrites the file before returning.
//
// Example:
//
//	err := ggufmeta.Modify("model.gguf", "general.name", "tiny", "string")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matches, err := ggufmeta.Search("model.gguf", "llama.")
package ggufmeta
