package pdf

import "errors"

// Extraction failure taxonomy. Low-quality text is not an error: it is
// returned on the result with a warning so callers can persist degraded text.
var (
	ErrNotFound            = errors.New("file not found")
	ErrInvalidFormat       = errors.New("file is not a pdf")
	ErrEncryptedUnreadable = errors.New("pdf is encrypted and could not be decrypted")
	ErrNoExtractableText   = errors.New("no extractable text in document")
)

// WarnLowQuality is attached to results that failed the quality gate on both
// backends but still produced some text.
const WarnLowQuality = "low quality text"
