package domain

// Domain contains core models shared by the harvester packages.

// Image is a catalog image picked up by the harvester.
type Image struct {
	ID       string `json:"id"`
	TargetID string `json:"target_id"`
	Breed    string `json:"breed,omitempty"`
	SubBreed string `json:"sub_breed,omitempty"`
	URL      string `json:"url"`
}
