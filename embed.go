package folio

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"sync"
)

// EmbeddedAssets contains static assets shipped with folio:
// folio.js, folio.css, favicon.svg
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

// AssetVersion is a short hash of folio.js and folio.css. Pages reference
// both as ?v=<version>, so a new release changes their URLs.
var AssetVersion = sync.OnceValue(func() string {
	h := sha256.New()
	for _, name := range []string{"embedded/folio.js", "embedded/folio.css"} {
		data, err := EmbeddedAssets.ReadFile(name)
		if err != nil {
			panic(err)
		}
		h.Write(data)
	}
	return hex.EncodeToString(h.Sum(nil))[:12]
})
