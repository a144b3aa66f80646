package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bitemap/web/internal/database"
	"github.com/bitemap/web/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	cdnHost           = "https://vz-9c9477c9-fd2.b-cdn.net"
	siteURL           = "https://bitemap.fun"
	appStoreURL       = "https://apps.apple.com/us/app/bitemap/id6746139076"
	fallbackThumbnail = "https://bitemap.fun/images/og-image.jpg"
	profilePhotoBase  = "https://lqslpgiibpcvknfehdlr.supabase.co/storage/v1/object/public/photos/profile/"

	defaultCreatorName = "BiteMap Creator"
	defaultPlaceName   = "Amazing Restaurant"
)

// VideoPreviewHandler serves /v/{code}: a server-rendered page with
// Open Graph and Twitter player meta tags so shared links unfurl, plus
// an inline player for anyone who opens the link in a browser.
func (app *App) VideoPreviewHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		http.Error(w, "Missing video code", http.StatusBadRequest)
		return
	}

	if app.Videos == nil {
		log.Error().Msg("Missing SUPABASE_ANON_KEY, cannot serve video previews")
		http.Error(w, "Server configuration error", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	video, err := app.lookupVideo(ctx, code)
	if errors.Is(err, database.ErrNotFound) {
		log.Info().Str("code", code).Msg("Video not found")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		renderNotFound(w)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("Failed to fetch video")
		http.Error(w, "Error loading video", http.StatusInternalServerError)
		return
	}

	app.attachRelated(ctx, video)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	renderPreview(w, buildPreviewData(video, code))
}

// lookupVideo resolves an opaque path code through the fallback
// chain: shareable code, then CDN video id, then primary key. Each
// step is its own round trip; the first hit wins.
func (app *App) lookupVideo(ctx context.Context, code string) (*models.Video, error) {
	video, err := app.Videos.GetByShareableCode(ctx, code)
	if err == nil {
		return video, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	video, err = app.Videos.GetByCDNVideoID(ctx, code)
	if err == nil {
		return video, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	return app.Videos.GetByID(ctx, code)
}

// attachRelated fills in creator and place when the foreign keys are
// present. The two reads are independent and run concurrently. A
// missing or failing lookup is not an error; rendering falls back to
// placeholder copy.
func (app *App) attachRelated(ctx context.Context, video *models.Video) {
	g, ctx := errgroup.WithContext(ctx)

	if video.CreatorID != "" && app.Creators != nil {
		g.Go(func() error {
			creator, err := app.Creators.GetByID(ctx, video.CreatorID)
			if err != nil {
				if !errors.Is(err, database.ErrNotFound) {
					log.Warn().Err(err).Str("creator_id", video.CreatorID).Msg("Failed to fetch creator")
				}
				return nil
			}
			video.Creator = creator
			return nil
		})
	}

	if video.PlaceID != "" && app.Places != nil {
		g.Go(func() error {
			place, err := app.Places.GetByID(ctx, video.PlaceID)
			if err != nil {
				if !errors.Is(err, database.ErrNotFound) {
					log.Warn().Err(err).Str("place_id", video.PlaceID).Msg("Failed to fetch place")
				}
				return nil
			}
			video.Place = place
			return nil
		})
	}

	g.Wait()
}

// playbackURL prefers stored URLs over a synthesized CDN manifest
// URL. The fallback template must stay byte-compatible with links
// already shared in the wild.
func playbackURL(v *models.Video) string {
	for _, u := range []string{v.BunnyCDNURL, v.VideoURL, v.ExternalVideoURL} {
		if u != "" {
			return u
		}
	}
	if v.BunnyVideoID != "" {
		return cdnHost + "/" + v.BunnyVideoID + "/playlist.m3u8"
	}
	return ""
}

func thumbnailURL(v *models.Video) string {
	if v.ThumbnailURL != "" {
		return v.ThumbnailURL
	}
	if v.BunnyVideoID != "" {
		return cdnHost + "/" + v.BunnyVideoID + "/thumbnail.jpg"
	}
	return fallbackThumbnail
}

// formatCount renders counters the way the app does: 1.2K, 3.4M.
func formatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

func buildPreviewData(video *models.Video, code string) previewData {
	creatorName := defaultCreatorName
	if video.Creator != nil && video.Creator.Name != "" {
		creatorName = video.Creator.Name
	}

	placeName := defaultPlaceName
	placeAddress := ""
	placeCity := ""
	if video.Place != nil {
		if video.Place.Name != "" {
			placeName = video.Place.Name
		}
		placeAddress = video.Place.Address
		placeCity = video.Place.City
	}

	location := placeAddress
	if placeAddress != "" && placeCity != "" {
		location = placeAddress + ", " + placeCity
	} else if placeCity != "" {
		location = placeCity
	}

	description := fmt.Sprintf("Watch this delicious review of %s. See more food content on BiteMap!", placeName)
	if placeCity != "" {
		description = fmt.Sprintf("Watch this delicious review of %s in %s. See more food content on BiteMap!", placeName, placeCity)
	}

	initial := ""
	if r := []rune(creatorName); len(r) > 0 {
		initial = strings.ToUpper(string(r[0]))
	}

	return previewData{
		Title:          creatorName + " on BiteMap: " + placeName,
		Description:    description,
		PageURL:        siteURL + "/v/" + code,
		AppStoreURL:    appStoreURL,
		VideoURL:       playbackURL(video),
		ThumbnailURL:   thumbnailURL(video),
		CreatorName:    creatorName,
		CreatorPic:     profilePhotoBase + creatorName + ".jpeg",
		CreatorInitial: initial,
		PlaceName:      placeName,
		PlaceLocation:  location,
		Views:          formatCount(video.Views),
		Likes:          formatCount(video.Likes),
		Saves:          formatCount(video.Saves),
		ShowDelivery:   placeName != defaultPlaceName,
		Code:           code,
	}
}
