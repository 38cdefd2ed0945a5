package wsmodels

type ServerMessage struct {
	ToUserID string `json:"-"`
	Time     string `json:"time"`  // event time
	Type     string `json:"type"`  // notification type
	Title    string `json:"title"` // notification title
	Msg      string `json:"msg"`   // notification text
}
