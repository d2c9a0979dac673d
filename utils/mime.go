package utils

import "bytes"

var imageSignatures = []struct {
	magic []byte
	mime  string
}{
	{[]byte{0xFF, 0xD8, 0xFF}, "image/jpeg"},
	{[]byte{0x89, 0x50, 0x4E, 0x47}, "image/png"},
	{[]byte("RIFF"), "image/webp"},
	{[]byte("GIF"), "image/gif"},
}

// DetectImageMIME sniffs the content type from the leading bytes. Anything
// unrecognized, including empty input, is reported as image/jpeg.
func DetectImageMIME(b []byte) string {
	for _, s := range imageSignatures {
		if bytes.HasPrefix(b, s.magic) {
			return s.mime
		}
	}
	return "image/jpeg"
}

// ImageExtension maps a sniffed content type to a file extension.
func ImageExtension(mime string) string {
	switch mime {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
