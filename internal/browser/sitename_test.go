package browser

import "testing"

func TestSiteName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://youtube.com", "youtube"},
		{"https://www.google.com/search?q=go", "google"},
		{"http://news.ycombinator.com/", "ycombinator"},
		{"https://www.bbc.co.uk/news", "bbc"},
		{"http://localhost:8080/app", "localhost"},
		{"http://127.0.0.1:3000", "127.0.0.1"},
		{"file:///tmp/index.html", "file:///tmp/index.html"},
	}
	for _, tt := range tests {
		if got := SiteName(tt.in); got != tt.want {
			t.Errorf("SiteName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
