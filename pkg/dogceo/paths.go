package dogceo

import (
	"strconv"
	"strings"
)

// Identifiers are trimmed and interpolated as-is: no percent-encoding, no cleaning.

const (
	pathRandomImage = "breeds/image/random"
	pathBreedsList  = "breeds/list/all"
)

func breedPath(breed string) string {
	return "breed/" + strings.TrimSpace(breed)
}

func subBreedPath(breed, subBreed string) string {
	return breedPath(breed) + "/" + strings.TrimSpace(subBreed)
}

func withCount(p string, n int) string {
	return p + "/" + strconv.Itoa(n)
}

func imagesPath(base string) string       { return base + "/images" }
func randomImagesPath(base string) string { return base + "/images/random" }
func subBreedListPath(breed string) string {
	return breedPath(breed) + "/list"
}
