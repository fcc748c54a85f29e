package datetime

import "time"

// Date renders a timestamp as YYYY-MM-DD
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// Clock renders a timestamp as HH-mm-ss (filename safe)
func Clock(t time.Time) string {
	return t.Format("15-04-05")
}

// DateTime renders a timestamp as YYYY-MM-DD HH:mm:ss
func DateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
