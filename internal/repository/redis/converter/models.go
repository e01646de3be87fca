package converter

type SessionRedisModel struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
