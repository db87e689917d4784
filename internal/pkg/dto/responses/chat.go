package responses

type ChatReply struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
}
