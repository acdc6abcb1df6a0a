package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "job-1.jpg", want: "job-1.jpg"},
		{name: "simple prefix", prefix: "uploads", key: "job-1.jpg", want: "uploads/job-1.jpg"},
		{name: "prefix trailing slash", prefix: "uploads/", key: "job-1.jpg", want: "uploads/job-1.jpg"},
		{name: "prefix and key slashes", prefix: "/uploads/", key: "/job-1.jpg", want: "uploads/job-1.jpg"},
		{name: "nested prefix", prefix: "env/prod", key: "job-1.jpg", want: "env/prod/job-1.jpg"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestStripPrefixInvertsApplyPrefix(t *testing.T) {
	t.Parallel()

	for _, prefix := range []string{"", "uploads", "env/prod"} {
		key := "job-1.jpg"
		if got := stripPrefix(prefix, applyPrefix(prefix, key)); got != key {
			t.Fatalf("stripPrefix(%q, applyPrefix(...)) = %q, want %q", prefix, got, key)
		}
	}
}
