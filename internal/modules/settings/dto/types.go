package dto

type SetPathInput struct {
	Path string
}

type PathOutput struct {
	Path string
	// Overridden reports whether Path comes from the config file.
	Overridden bool
}
