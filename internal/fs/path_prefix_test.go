package fs

import (
	"path/filepath"
	"runtime"
	"testing"
)

func fromSlashAbs(p string) string {
	if runtime.GOOS == "windows" {
		if len(p) > 0 && p[0] == '/' {
			p = "c:" + p
		}
	}

	return filepath.FromSlash(p)
}

func TestTrimPathPrefix(t *testing.T) {
	var tests = []struct {
		base, p string
		rel     string
		ok      bool
	}{
		{"/home/user/root", "/home/user/root/file.txt", "file.txt", true},
		{"/home/user/root", "/home/user/root/sub/sub2/z.txt", "sub/sub2/z.txt", true},
		{"/home/user/root", "/home/user/root/root_substr_root/data.txt", "root_substr_root/data.txt", true},
		{"/home/user/root", "/home/user/root/a/home/user/root/b.txt", "a/home/user/root/b.txt", true},
		{"/home/user/root", "/home/user/rootfile", "/home/user/rootfile", false},
		{"/home/user/root", "/home/user/root", "/home/user/root", false},
		{"/home/user/root", "/other/home/user/root/x", "/other/home/user/root/x", false},
		{"root", "root/x", "x", true},
		{".", "./x", "x", true},
		{"/", "/x", "x", true},
		{"", "x", "x", false},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			base := fromSlashAbs(test.base)
			p := fromSlashAbs(test.p)
			want := test.rel
			if test.ok {
				want = filepath.FromSlash(want)
			} else {
				want = p
			}

			rel, ok := TrimPathPrefix(base, p)
			if ok != test.ok || rel != want {
				t.Fatalf("wrong result for TrimPathPrefix(%q, %q): want (%q, %v), got (%q, %v)",
					base, p, want, test.ok, rel, ok)
			}
		})
	}
}
