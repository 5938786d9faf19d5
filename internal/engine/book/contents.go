package book

// Content is the texture pair of one leaf.
type Content struct {
	Front string `yaml:"front"`
	Back  string `yaml:"back"`
}

// BuildContents lays pictures out on leaves: the cover opens the first leaf,
// the pictures follow two per leaf, and the back cover closes the last leaf.
// When the sides do not pair up, a blank side ("") precedes the back cover.
func BuildContents(pictures []string, cover, backCover string) []Content {
	sides := make([]string, 0, len(pictures)+3)
	sides = append(sides, cover)
	sides = append(sides, pictures...)
	if len(sides)%2 == 0 {
		sides = append(sides, "")
	}
	sides = append(sides, backCover)

	contents := make([]Content, 0, len(sides)/2)
	for i := 0; i < len(sides); i += 2 {
		contents = append(contents, Content{Front: sides[i], Back: sides[i+1]})
	}
	return contents
}
