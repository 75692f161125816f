package position

import (
	"errors"
	"testing"
)

const bongcloudFEN = "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPPKPPP/RNBQ1BNR b kq - 1 2"

func play(t *testing.T, moves ...string) *Board {
	t.Helper()
	b := NewBoard()
	for _, san := range moves {
		if err := b.Play(san); err != nil {
			t.Fatalf("Play(%q): %v", san, err)
		}
	}
	return b
}

func TestStartMatchesFEN(t *testing.T) {
	k, err := Parse(StartFEN)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !Equal(k, Start()) {
		t.Errorf("start FEN key differs from Start()")
	}
	if !Equal(NewBoard().Key(), Start()) {
		t.Errorf("new board differs from Start()")
	}
}

func TestEmptyBoard(t *testing.T) {
	k, err := Parse(EmptyFEN)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !Equal(k, Empty()) {
		t.Errorf("empty FEN key differs from Empty()")
	}
	if Equal(Empty(), Start()) {
		t.Errorf("empty board equals starting position")
	}
}

func TestParseInvalid(t *testing.T) {
	for _, fen := range []string{"", "   ", "not a fen"} {
		if _, err := Parse(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("Parse(%q) err = %v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestBoardReplay(t *testing.T) {
	b := play(t, "e4", "e5", "Ke2")
	want, err := Parse(bongcloudFEN)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !Equal(b.Key(), want) {
		t.Errorf("after e4 e5 Ke2 got %s, want %s", b.FEN(), bongcloudFEN)
	}
}

func TestPlayRejects(t *testing.T) {
	b := play(t, "e4", "e5")
	before := b.Key()

	for _, token := range []string{"1.", "2...", "1-0", "$1", "{", "Ke3", "Qh8", ""} {
		if err := b.Play(token); !errors.Is(err, ErrIllegalMove) {
			t.Errorf("Play(%q) err = %v, want ErrIllegalMove", token, err)
		}
	}
	if !Equal(b.Key(), before) {
		t.Errorf("rejected tokens changed the board: %s", b.FEN())
	}
}

func TestPlayStripsCheckSuffix(t *testing.T) {
	a := play(t, "e4", "c5", "Nf3", "d6", "Bb5+")
	b := play(t, "e4", "c5", "Nf3", "d6", "Bb5")
	if !Equal(a.Key(), b.Key()) {
		t.Errorf("check suffix changed the position")
	}
}

func TestPlayCastlingWithZeros(t *testing.T) {
	setup := []string{"e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5"}
	letters := play(t, append(setup, "O-O", "Nf6", "d3", "d6", "Nc3", "Bg4", "Be3", "Qd7", "Qd2", "O-O-O")...)
	zeros := play(t, append(setup, "0-0", "Nf6", "d3", "d6", "Nc3", "Bg4", "Be3", "Qd7", "Qd2", "0-0-0")...)
	if !Equal(letters.Key(), zeros.Key()) {
		t.Errorf("0-0 castling = %s, want %s", zeros.FEN(), letters.FEN())
	}
}

func TestEnPassantCanonical(t *testing.T) {
	// No black pawn can take on e3, so the target is not part of the key.
	b := play(t, "e4")
	for _, fen := range []string{
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	} {
		k, err := Parse(fen)
		if err != nil {
			t.Fatalf("Parse(%q): %v", fen, err)
		}
		if !Equal(b.Key(), k) {
			t.Errorf("Parse(%q) differs from replayed 1. e4", fen)
		}
	}
}

func TestFENRoundTrip(t *testing.T) {
	b := play(t, "d4", "Nf6", "c4", "g6")
	k := b.Key()
	back, err := Parse(FEN(k))
	if err != nil {
		t.Fatalf("Parse(FEN(k)): %v", err)
	}
	if !Equal(back, k) {
		t.Errorf("FEN round trip changed the key")
	}
}
