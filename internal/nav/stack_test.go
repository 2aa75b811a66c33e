package nav

import "testing"

func TestStack_PopNeverRemovesRoot(t *testing.T) {
	t.Parallel()

	s := NewStack(Splash{})
	if s.Pop() {
		t.Error("expected Pop on root to return false")
	}
	if s.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", s.Depth())
	}

	s.Push(Login{})
	if !s.Pop() {
		t.Error("expected Pop to succeed with two entries")
	}
	if s.Current().Name() != NameSplash {
		t.Errorf("expected splash visible, got %s", s.Current().Name())
	}
}

func TestStack_PopUpTo(t *testing.T) {
	t.Parallel()

	build := func() *Stack {
		s := NewStack(Splash{})
		s.Push(Login{})
		s.Push(OTP{Email: "a@b.c", Mode: "login"})
		return s
	}

	t.Run("exclusive keeps the target", func(t *testing.T) {
		t.Parallel()
		s := build()
		s.PopUpTo(NameLogin, false)
		if s.Depth() != 2 || s.Current().Name() != NameLogin {
			t.Errorf("expected [splash login], got depth %d top %s", s.Depth(), s.Current().Name())
		}
	})

	t.Run("inclusive removes the target", func(t *testing.T) {
		t.Parallel()
		s := build()
		s.PopUpTo(NameLogin, true)
		if s.Depth() != 1 || s.Current().Name() != NameSplash {
			t.Errorf("expected [splash], got depth %d top %s", s.Depth(), s.Current().Name())
		}
	})

	t.Run("missing name leaves the stack unchanged", func(t *testing.T) {
		t.Parallel()
		s := build()
		s.PopUpTo(NameWallet, true)
		if s.Depth() != 3 {
			t.Errorf("expected depth 3, got %d", s.Depth())
		}
	})

	t.Run("pops to the newest matching entry", func(t *testing.T) {
		t.Parallel()
		s := NewStack(Home{})
		s.Push(Orders{})
		s.Push(Home{})
		s.Push(Wallet{})
		s.PopUpTo(NameHome, false)
		if s.Depth() != 3 || s.Current().Name() != NameHome {
			t.Errorf("expected newest home on top at depth 3, got depth %d top %s",
				s.Depth(), s.Current().Name())
		}
	})
}

func TestStack_Reset(t *testing.T) {
	t.Parallel()

	s := NewStack(Splash{})
	s.Push(Home{})
	s.Push(Profile{})

	s.Reset(Login{})
	if s.Depth() != 1 || s.Current().Name() != NameLogin {
		t.Errorf("expected single login entry, got depth %d top %s", s.Depth(), s.Current().Name())
	}
	if s.Contains(NameHome) {
		t.Error("expected home to be gone after reset")
	}
}
