package dogceo

import "context"

// RandomImage returns a random image from the whole catalog.
func (c *Client) RandomImage(ctx context.Context) (string, error) {
	return fetch[string](ctx, c, pathRandomImage)
}

// RandomImages returns n random images from the whole catalog. The API caps n at 50.
func (c *Client) RandomImages(ctx context.Context, n int) ([]string, error) {
	return fetch[[]string](ctx, c, withCount(pathRandomImage, n))
}

// RandomImageByBreed returns a random image of breed, e.g. "hound".
func (c *Client) RandomImageByBreed(ctx context.Context, breed string) (string, error) {
	return fetch[string](ctx, c, randomImagesPath(breedPath(breed)))
}

// RandomImagesByBreed returns n random images of breed.
func (c *Client) RandomImagesByBreed(ctx context.Context, breed string, n int) ([]string, error) {
	return fetch[[]string](ctx, c, withCount(randomImagesPath(breedPath(breed)), n))
}

// ImagesByBreed returns every image of breed.
func (c *Client) ImagesByBreed(ctx context.Context, breed string) ([]string, error) {
	return fetch[[]string](ctx, c, imagesPath(breedPath(breed)))
}

// RandomImageBySubBreed returns a random image of breed/subBreed, e.g. hound/afghan.
func (c *Client) RandomImageBySubBreed(ctx context.Context, breed, subBreed string) (string, error) {
	return fetch[string](ctx, c, randomImagesPath(subBreedPath(breed, subBreed)))
}

// RandomImagesBySubBreed returns n random images of breed/subBreed.
func (c *Client) RandomImagesBySubBreed(ctx context.Context, breed, subBreed string, n int) ([]string, error) {
	return fetch[[]string](ctx, c, withCount(randomImagesPath(subBreedPath(breed, subBreed)), n))
}

// ImagesBySubBreed returns every image of breed/subBreed.
func (c *Client) ImagesBySubBreed(ctx context.Context, breed, subBreed string) ([]string, error) {
	return fetch[[]string](ctx, c, imagesPath(subBreedPath(breed, subBreed)))
}
