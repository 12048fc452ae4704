package gitcmd

import "testing"

func TestParseFiles(t *testing.T) {
	input := "commit abc1234\n" +
		"Author: A Dev <a@example.com>\n" +
		"Date:   Mon Aug 3 00:00:00 2026\n" +
		"\n" +
		"    a commit message\n" +
		"\n" +
		"M\tmodified.go\n" +
		"A\tnew.go\n" +
		"D\tgone.go\n" +
		" 3 files changed\n"

	meta, files, err := ParseFiles(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if files[0] != (FileEntry{Status: StatusModified, Path: "modified.go"}) {
		t.Errorf("files[0] = %+v", files[0])
	}
	if files[1] != (FileEntry{Status: StatusNew, Path: "new.go"}) {
		t.Errorf("files[1] = %+v", files[1])
	}
	if files[2] != (FileEntry{Status: StatusDeleted, Path: "gone.go"}) {
		t.Errorf("files[2] = %+v", files[2])
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %+v", len(files), files)
	}
	if meta == "" {
		t.Error("expected non-empty metadata block")
	}
}

func TestParseFilesNoFileLines(t *testing.T) {
	meta, files, err := ParseFiles("commit abc1234\nAuthor: x\n\n    message\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("got %+v, want no files", files)
	}
	if meta == "" {
		t.Error("expected non-empty metadata block")
	}
}
