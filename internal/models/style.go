package models

// StyleOptions are the visual styles offered by the production form
var StyleOptions = []string{
	"Noir Horror",
	"Found Footage",
	"Junji Ito Manga",
	"Psychological/Surreal Horror",
}

// AspectRatios are the output aspect ratios offered by the production form
var AspectRatios = []string{
	"16:9",
	"1:1",
	"9:16",
}
