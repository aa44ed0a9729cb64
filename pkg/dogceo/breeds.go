package dogceo

import "context"

// BreedDirectory maps each breed to its sub-breeds (empty when it has none).
type BreedDirectory map[string][]string

// Breeds lists every breed with its sub-breeds.
func (c *Client) Breeds(ctx context.Context) (BreedDirectory, error) {
	return fetch[BreedDirectory](ctx, c, pathBreedsList)
}

// SubBreeds lists the sub-breeds of breed. An empty listing is reported as an
// *Error with ErrMsgNoSubBreeds even though the API call succeeded.
func (c *Client) SubBreeds(ctx context.Context, breed string) ([]string, error) {
	subs, err := fetch[[]string](ctx, c, subBreedListPath(breed))
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, newError(ErrMsgNoSubBreeds)
	}
	return subs, nil
}
