package usecase

const (
	// apologyText replaces the reply when the upstream fails.
	apologyText = "Sorry, I'm having trouble thinking right now. Please try again in a moment."

	// upstreamErrorPrefix is used when upstream errors are exposed.
	upstreamErrorPrefix = "Oops! Something went wrong: "
)
