package dogceo

import "context"

// defaultClient backs the package-level helpers.
var defaultClient = New()

// RandomImage calls Client.RandomImage on the default client.
func RandomImage(ctx context.Context) (string, error) { return defaultClient.RandomImage(ctx) }

// RandomImages calls Client.RandomImages on the default client.
func RandomImages(ctx context.Context, n int) ([]string, error) {
	return defaultClient.RandomImages(ctx, n)
}

func RandomImageByBreed(ctx context.Context, breed string) (string, error) {
	return defaultClient.RandomImageByBreed(ctx, breed)
}

func RandomImagesByBreed(ctx context.Context, breed string, n int) ([]string, error) {
	return defaultClient.RandomImagesByBreed(ctx, breed, n)
}

func ImagesByBreed(ctx context.Context, breed string) ([]string, error) {
	return defaultClient.ImagesByBreed(ctx, breed)
}

func RandomImageBySubBreed(ctx context.Context, breed, subBreed string) (string, error) {
	return defaultClient.RandomImageBySubBreed(ctx, breed, subBreed)
}

func RandomImagesBySubBreed(ctx context.Context, breed, subBreed string, n int) ([]string, error) {
	return defaultClient.RandomImagesBySubBreed(ctx, breed, subBreed, n)
}

func ImagesBySubBreed(ctx context.Context, breed, subBreed string) ([]string, error) {
	return defaultClient.ImagesBySubBreed(ctx, breed, subBreed)
}

// Breeds calls Client.Breeds on the default client.
func Breeds(ctx context.Context) (BreedDirectory, error) { return defaultClient.Breeds(ctx) }

// SubBreeds calls Client.SubBreeds on the default client.
func SubBreeds(ctx context.Context, breed string) ([]string, error) {
	return defaultClient.SubBreeds(ctx, breed)
}
