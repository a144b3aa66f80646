package api

import (
	"embed"
	"html/template"
	"io"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	previewTmpl  = template.Must(template.ParseFS(templateFS, "templates/preview.html"))
	notFoundTmpl = template.Must(template.ParseFS(templateFS, "templates/notfound.html"))
)

type previewData struct {
	Title          string
	Description    string
	PageURL        string
	AppStoreURL    string
	VideoURL       string
	ThumbnailURL   string
	CreatorName    string
	CreatorPic     string
	CreatorInitial string
	PlaceName      string
	PlaceLocation  string
	Views          string
	Likes          string
	Saves          string
	ShowDelivery   bool
	Code           string
}

func renderPreview(w io.Writer, data previewData) {
	if err := previewTmpl.Execute(w, data); err != nil {
		log.Error().Err(err).Msg("Failed to render preview page")
	}
}

func renderNotFound(w io.Writer) {
	if err := notFoundTmpl.Execute(w, struct{ AppStoreURL string }{appStoreURL}); err != nil {
		log.Error().Err(err).Msg("Failed to render not found page")
	}
}
