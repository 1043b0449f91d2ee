package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Feed(ctx context.Context) error { f.calls = append(f.calls, "feed"); return nil }
func (f *fakeExec) Show(ctx context.Context, id string) error {
	f.calls = append(f.calls, "show")
	f.arg = id
	return nil
}
func (f *fakeExec) Comment(ctx context.Context, id string) error {
	f.calls = append(f.calls, "comment")
	f.arg = id
	return nil
}
func (f *fakeExec) Create(ctx context.Context) error {
	f.calls = append(f.calls, "post")
	return nil
}
func (f *fakeExec) Directory(ctx context.Context) error {
	f.calls = append(f.calls, "directory")
	return nil
}
func (f *fakeExec) Notifications(ctx context.Context) error {
	f.calls = append(f.calls, "notifications")
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) Emergency(ctx context.Context) error {
	f.calls = append(f.calls, "emergency")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"feed",
		"show 12",
		"post",
		"notifications",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "feed", "show", "post", "notifications"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.arg != "12" {
		t.Fatalf("show argument lost: %q", exec.arg)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("show\ncomment\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EmptyLineIgnored(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n   \nexit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
