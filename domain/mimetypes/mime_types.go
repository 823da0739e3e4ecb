package mimetypes

import (
	"mime"
	"strings"
)

type MIME string

const (
	Unknown   MIME = "unknown"
	TextPlain MIME = "text/plain"

	ApplicationPDF        MIME = "application/pdf"
	ApplicationZIP        MIME = "application/zip"
	ApplicationOLEStorage MIME = "application/x-ole-storage"
	ApplicationMSWord     MIME = "application/msword"
	ApplicationMSExcel    MIME = "application/vnd.ms-excel"
	ApplicationMSPower    MIME = "application/vnd.ms-powerpoint"
	ApplicationDOCX       MIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ApplicationXLSX       MIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ApplicationPPTX       MIME = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"
)

// expectedByType lists the MIME types a sniffer may report for a rebuilt file
// of each type. Only the header is genuine, so container formats are usually
// reported as their generic container (zip, OLE) rather than the precise kind.
var expectedByType = map[string][]MIME{
	"PDF":  {ApplicationPDF},
	"ZIP":  {ApplicationZIP},
	"DOCX": {ApplicationDOCX, ApplicationZIP},
	"XLSX": {ApplicationXLSX, ApplicationZIP},
	"PPTX": {ApplicationPPTX, ApplicationZIP},
	"DOC":  {ApplicationMSWord, ApplicationOLEStorage},
	"XLS":  {ApplicationMSExcel, ApplicationOLEStorage},
	"PPT":  {ApplicationMSPower, ApplicationOLEStorage},
	"JPG":  {ImageJPEG},
	"JPEG": {ImageJPEG},
	"PNG":  {ImagePNG},
	"GIF":  {ImageGIF},
	"TXT":  {TextPlain},
}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// Expected returns the MIME types acceptable for fileType, if any are known.
func Expected(fileType string) ([]MIME, bool) {
	expected, ok := expectedByType[strings.ToUpper(fileType)]
	return expected, ok
}

// Verify reports whether detected is one of the MIME types expected for
// fileType. Types with no known MIME are never verified.
func Verify(detected string, fileType string) bool {
	expected, ok := Expected(fileType)
	if !ok {
		return false
	}
	for _, e := range expected {
		if _, ok := Matches(detected, e); ok {
			return true
		}
	}
	return false
}
