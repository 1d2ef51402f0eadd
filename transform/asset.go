package transform

import (
	"encoding/base64"
	"path/filepath"
	"strings"
)

// assetExtensions are the filename extensions routed down the asset path.
var assetExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".psd":  true,
	".svg":  true,
	".tiff": true,
}

func isAsset(file string) bool {
	return assetExtensions[strings.ToLower(filepath.Ext(file))]
}

// assetFile carries binary content as standard base64; decoding the
// AssetContent field reproduces the input bytes exactly.
func assetFile(file string, content []byte) *File {
	return &File{
		File:         file,
		Kind:         KindAsset,
		AssetContent: base64.StdEncoding.EncodeToString(content),
		Variants:     map[string]*VariantResult{},
	}
}
