package domain

// Session — текущие учётные данные клиента.
// Пустой Token означает анонимную сессию.
type Session struct {
	Token    string
	Username string
}

// Present сообщает, есть ли активная сессия.
func (s Session) Present() bool {
	return s.Token != ""
}
