package llm

type Request struct {
	Prompt       string
	MaxNewTokens int
}

type Response struct {
	Content string
}
