package models

// Video is a row of the hosted Videos table. All columns except the
// counters are nullable; a null decodes to the zero value.
type Video struct {
	ID               string `json:"id"`
	ShareableCode    string `json:"shareable_code"`
	BunnyVideoID     string `json:"bunny_video_id"`
	BunnyCDNURL      string `json:"bunny_cdn_url"`
	VideoURL         string `json:"video_url"`
	ExternalVideoURL string `json:"external_video_url"`
	ThumbnailURL     string `json:"thumbnail_url"`
	Caption          string `json:"caption"`
	Views            int64  `json:"views"`
	Likes            int64  `json:"likes"`
	Saves            int64  `json:"saves"`
	CreatorID        string `json:"creator_id"`
	PlaceID          string `json:"place_id"`

	// Fetched separately; never part of the Videos row itself.
	Creator *Creator `json:"-"`
	Place   *Place   `json:"-"`
}

// Creator is a row of the hosted Creator table.
type Creator struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// Place is a row of the hosted Places table.
type Place struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Rating        float64 `json:"rating"`
	GoogleMapsURL string  `json:"google_maps_url"`
}
