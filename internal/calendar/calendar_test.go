package calendar

import (
	"errors"
	"testing"

	"github.com/starford/miti/internal/apperr"
)

func bs(y, m, d int) Date { return Date{Year: y, Month: m - 1, Day: d} }

func TestRoundTrip(t *testing.T) {
	tbl := Standard()
	for y := tbl.FirstYear(); y <= tbl.LastYear(); y++ {
		row, err := tbl.MonthLengths(y - tbl.FirstYear())
		if err != nil {
			t.Fatal(err)
		}
		for m, n := range row {
			for d := 1; d <= n; d++ {
				in := Date{Year: y, Month: m, Day: d}
				ad, err := tbl.ToAD(in)
				if err != nil {
					t.Fatalf("ToAD(%v): %v", in, err)
				}
				out, err := tbl.ToBS(ad)
				if err != nil {
					t.Fatalf("ToBS(%v): %v", ad, err)
				}
				if out != in {
					t.Fatalf("round trip %v -> %v -> %v", in, ad, out)
				}
			}
		}
	}
}

func TestEpochAlignment(t *testing.T) {
	tbl := Standard()
	for i := 0; i < tbl.Years(); i++ {
		anchor, err := tbl.EpochAnchorAD(i)
		if err != nil {
			t.Fatal(err)
		}
		got, err := tbl.ToBS(anchor)
		if err != nil {
			t.Fatalf("ToBS(%v): %v", anchor, err)
		}
		want := Date{Year: tbl.FirstYear() + i, Month: 0, Day: 1}
		if got != want {
			t.Errorf("ToBS(%v) = %v, want %v", anchor, got, want)
		}
		// The day before the anchor is the last day of the previous year.
		if i == 0 {
			continue
		}
		prev, err := tbl.AddDays(want, -1)
		if err != nil {
			t.Fatal(err)
		}
		row, _ := tbl.MonthLengths(i - 1)
		if prev.Year != want.Year-1 || prev.Month != 11 || prev.Day != row[11] {
			t.Errorf("day before %v = %v", want, prev)
		}
	}
}

func TestMonthLengthSum(t *testing.T) {
	tbl := Standard()
	for i := 0; i+1 < tbl.Years(); i++ {
		a, _ := tbl.EpochAnchorAD(i)
		b, _ := tbl.EpochAnchorAD(i + 1)
		ca, _ := civil(a)
		cb, _ := civil(b)
		total, err := tbl.DaysInYear(tbl.FirstYear() + i)
		if err != nil {
			t.Fatal(err)
		}
		if got := daysBetween(cb, ca); got != total {
			t.Errorf("year %d: anchors %v..%v span %d days, table says %d", tbl.FirstYear()+i, a, b, got, total)
		}
	}
}

func TestNewTableMatchesStandard(t *testing.T) {
	tbl, err := NewTable(2000, Date{Year: 1943, Month: 3, Day: 14}, yearMonthDays)
	if err != nil {
		t.Fatal(err)
	}
	for i := range baishakOne {
		if tbl.anchors[i] != baishakOne[i] {
			t.Errorf("anchor %d = %d, want %d", i, tbl.anchors[i], baishakOne[i])
		}
	}
	if _, err := NewTable(2000, Date{Year: 1943, Month: 1, Day: 30}, yearMonthDays); !errors.Is(err, apperr.ErrInvalidDate) {
		t.Errorf("non-existent anchor: err = %v", err)
	}
	if _, err := NewTable(2000, Date{Year: 1943, Month: 3, Day: 14}, nil); err == nil {
		t.Error("empty table should fail")
	}
}

func TestKnownConversions(t *testing.T) {
	for _, tc := range []struct {
		bs, ad  Date
		weekday int
	}{
		{bs(2000, 1, 1), bs(1943, 4, 14), 3},
		{bs(2053, 10, 19), bs(1997, 2, 1), 6},
		{bs(2080, 1, 15), bs(2023, 4, 28), 5},
		{bs(2080, 9, 16), bs(2024, 1, 1), 1},
		{bs(2080, 12, 30), bs(2024, 4, 12), 5},
		{bs(2081, 1, 1), bs(2024, 4, 13), 6},
		{bs(2081, 4, 32), bs(2024, 8, 16), 5},
		{bs(2082, 6, 30), bs(2025, 10, 16), 4},
		{bs(2082, 7, 1), bs(2025, 10, 17), 5},
		{bs(2083, 7, 1), bs(2026, 10, 17), 6},
		{bs(2090, 12, 30), bs(2034, 4, 13), 4},
	} {
		if err := Standard().Validate(tc.bs); err != nil {
			t.Errorf("Validate(%v): %v", tc.bs, err)
			continue
		}
		ad, err := ToAD(tc.bs)
		if err != nil {
			t.Errorf("ToAD(%v): %v", tc.bs, err)
			continue
		}
		if ad != tc.ad {
			t.Errorf("ToAD(%v) = %v, want %v", tc.bs, ad, tc.ad)
		}
		back, err := ToBS(tc.ad)
		if err != nil {
			t.Errorf("ToBS(%v): %v", tc.ad, err)
			continue
		}
		if back != tc.bs {
			t.Errorf("ToBS(%v) = %v, want %v", tc.ad, back, tc.bs)
		}
		wd, err := Standard().Weekday(tc.bs)
		if err != nil || wd != tc.weekday {
			t.Errorf("Weekday(%v) = %d, %v, want %d", tc.bs, wd, err, tc.weekday)
		}
	}
}

func TestToADString(t *testing.T) {
	ad, err := Standard().ToADString("2053-10-19")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ad.String(), "1997-02-01"; got != want {
		t.Errorf("ToADString = %q, want %q", got, want)
	}
	back, err := Standard().ToBSString(ad.String())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := back.String(), "2053-10-19"; got != want {
		t.Errorf("ToBSString = %q, want %q", got, want)
	}
	if _, err := Standard().ToADString("2053-13-01"); !errors.Is(err, apperr.ErrInvalidDateFormat) {
		t.Errorf("bad month: err = %v", err)
	}
}

func TestToADInvalid(t *testing.T) {
	for _, d := range []Date{
		{Year: 1999, Month: 0, Day: 1},
		{Year: 2091, Month: 0, Day: 1},
		{Year: 2080, Month: 0, Day: 0},
		{Year: 2080, Month: 0, Day: 33},
		{Year: 2080, Month: 12, Day: 1},
		{Year: 2080, Month: -1, Day: 1},
	} {
		if _, err := ToAD(d); !errors.Is(err, apperr.ErrInvalidDate) {
			t.Errorf("ToAD(%v): err = %v, want ErrInvalidDate", d, err)
		}
	}
}

func TestToADOverflowCarries(t *testing.T) {
	// Baishakh 2081 has 31 days, so day 32 is Jestha 1.
	over, err := ToAD(bs(2081, 1, 32))
	if err != nil {
		t.Fatal(err)
	}
	next, _ := ToAD(bs(2081, 2, 1))
	if over != next {
		t.Errorf("ToAD(2081-01-32) = %v, want %v", over, next)
	}
}

func TestToBSBoundaries(t *testing.T) {
	for _, tc := range []struct {
		ad   Date
		want Date
		err  error
	}{
		{ad: bs(1943, 4, 13), err: apperr.ErrInvalidDate},
		{ad: bs(1943, 1, 1), err: apperr.ErrInvalidDate},
		{ad: bs(1900, 6, 1), err: apperr.ErrInvalidDate},
		{ad: bs(1943, 4, 14), want: bs(2000, 1, 1)},
		{ad: bs(2034, 1, 10), want: bs(2090, 9, 26)},
		{ad: bs(2034, 4, 13), want: bs(2090, 12, 30)},
		{ad: bs(2034, 4, 14), err: apperr.ErrInvalidDate},
		{ad: bs(2040, 1, 1), err: apperr.ErrInvalidDate},
		{ad: bs(2023, 2, 29), err: apperr.ErrInvalidDate},
	} {
		got, err := ToBS(tc.ad)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("ToBS(%v): err = %v, want %v", tc.ad, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ToBS(%v): %v", tc.ad, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ToBS(%v) = %v, want %v", tc.ad, got, tc.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tbl := Standard()
	if err := tbl.Validate(bs(2081, 4, 32)); err != nil {
		t.Errorf("2081-04-32: %v", err)
	}
	for _, d := range []Date{bs(2081, 1, 32), bs(1999, 12, 30), bs(2080, 13, 1), bs(2080, 1, 0)} {
		if err := tbl.Validate(d); !errors.Is(err, apperr.ErrInvalidDate) {
			t.Errorf("Validate(%v) = %v", d, err)
		}
	}
}

func TestTableLookups(t *testing.T) {
	tbl := Standard()
	if tbl.FirstYear() != 2000 || tbl.LastYear() != 2090 || tbl.Years() != 91 {
		t.Fatalf("range = %d..%d (%d years)", tbl.FirstYear(), tbl.LastYear(), tbl.Years())
	}
	if _, err := tbl.MonthLengths(-1); !errors.Is(err, apperr.ErrIndexOutOfRange) {
		t.Errorf("MonthLengths(-1): %v", err)
	}
	if _, err := tbl.MonthLengths(tbl.Years()); !errors.Is(err, apperr.ErrIndexOutOfRange) {
		t.Errorf("MonthLengths(len): %v", err)
	}
	if _, err := tbl.EpochAnchorAD(91); !errors.Is(err, apperr.ErrIndexOutOfRange) {
		t.Errorf("EpochAnchorAD(91): %v", err)
	}
	a, _ := tbl.EpochAnchorAD(81)
	if a != bs(2024, 4, 13) {
		t.Errorf("EpochAnchorAD(81) = %v", a)
	}
	r := tbl.Range()
	if r.StartBS.String() != "2000-01-01" || r.EndBS.String() != "2090-12-30" ||
		r.StartAD.String() != "1943-04-14" || r.EndAD.String() != "2034-04-13" {
		t.Errorf("Range = %+v", r)
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("ad"); err != nil || k != AD {
		t.Errorf("ParseKind(ad) = %v, %v", k, err)
	}
	if _, err := ParseKind("lunar"); !errors.Is(err, apperr.ErrInvalidKind) {
		t.Errorf("ParseKind(lunar) err = %v", err)
	}
}

func TestCompare(t *testing.T) {
	a, b := bs(2080, 1, 2), bs(2080, 2, 1)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare(%v, %v) inconsistent", a, b)
	}
}
