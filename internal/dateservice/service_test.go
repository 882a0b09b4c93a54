package dateservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/starford/miti/internal/apperr"
	"github.com/starford/miti/internal/calendar"
	"github.com/starford/miti/internal/locale"
	"github.com/starford/miti/internal/testutil"
)

// testService is pinned to AD 2026-10-17, which is BS 2083-07-01.
func testService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	opts = append([]Option{WithNow(testutil.Clock(2026, time.October, 17))}, opts...)
	return NewService(opts...)
}

func TestToday(t *testing.T) {
	svc := testService(t)
	d, err := svc.Today(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if d.BS != "2083-07-01" || d.AD != "2026-10-17" {
		t.Errorf("today = %s / %s", d.BS, d.AD)
	}
	if d.MonthName != "Kartik" || d.WeekdayName != "Saturday" || d.WeekdayShort != "Sat" || d.ADMonthName != "October" {
		t.Errorf("names = %q %q %q %q", d.MonthName, d.WeekdayName, d.WeekdayShort, d.ADMonthName)
	}
	if d.Lang != locale.EN {
		t.Errorf("lang = %q", d.Lang)
	}

	np, err := svc.Today(context.Background(), "np")
	if err != nil {
		t.Fatal(err)
	}
	if np.Text != "२०८३-०७-०१" || np.MonthName != "कार्तिक" {
		t.Errorf("np today = %q %q", np.Text, np.MonthName)
	}
	if _, err := svc.Today(context.Background(), "fr"); !errors.Is(err, apperr.ErrInvalidLang) {
		t.Errorf("lang fr err = %v", err)
	}
}

func TestConvert(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	d, err := svc.ToAD(ctx, "2053-10-19", "")
	if err != nil || d.AD != "1997-02-01" {
		t.Fatalf("ToAD = %+v, %v", d, err)
	}
	d, err = svc.ToBS(ctx, "1997-02-01", "")
	if err != nil || d.BS != "2053-10-19" {
		t.Fatalf("ToBS = %+v, %v", d, err)
	}
	// Overflowing days carry forward on conversion.
	d, err = svc.ToAD(ctx, "2081-01-32", "")
	if err != nil || d.BS != "2081-02-01" {
		t.Errorf("ToAD overflow = %+v, %v", d, err)
	}
	if _, err := svc.ToBS(ctx, "1943-04-13", ""); !errors.Is(err, apperr.ErrInvalidDate) {
		t.Errorf("ToBS before epoch err = %v", err)
	}
	if _, err := svc.ToAD(ctx, "2081/01/01", ""); !errors.Is(err, apperr.ErrInvalidDateFormat) {
		t.Errorf("ToAD bad format err = %v", err)
	}
}

func TestGetDate(t *testing.T) {
	svc := testService(t)
	d, err := svc.GetDate(context.Background(), "2080-01-15", "np")
	if err != nil {
		t.Fatal(err)
	}
	if d.Components.Year != "२०८०" || d.WeekdayName != "शुक्रबार" || d.ADText != "२०२३-०४-२८" {
		t.Errorf("detail = %+v", d)
	}
	if _, err := svc.GetDate(context.Background(), "2081-01-32", ""); !errors.Is(err, apperr.ErrInvalidDate) {
		t.Errorf("strict day err = %v", err)
	}
}

func TestShift(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	d, err := svc.Shift(ctx, "2081-04-10", 1, "m", "")
	if err != nil || d.BS != "2081-05-10" {
		t.Errorf("shift +1m = %+v, %v", d, err)
	}
	d, err = svc.Shift(ctx, "2081-01-01", -1, "day", "")
	if err != nil || d.BS != "2080-12-30" {
		t.Errorf("shift -1d = %+v, %v", d, err)
	}
	if _, err := svc.Shift(ctx, "2081-01-01", 1, "fortnight", ""); !errors.Is(err, apperr.ErrInvalidUnit) {
		t.Errorf("bad unit err = %v", err)
	}
	if _, err := svc.Shift(ctx, "2090-12-30", 1, "d", ""); !errors.Is(err, apperr.ErrInvalidDate) {
		t.Errorf("past end err = %v", err)
	}
}

func TestFormat(t *testing.T) {
	svc := testService(t, WithDefaults(locale.EN, calendar.BS, "MMMM D, YYYY"))
	ctx := context.Background()
	got, err := svc.Format(ctx, "2080-01-15", "", "")
	if err != nil || got != "Baisakh 15, 2080" {
		t.Errorf("default layout = %q, %v", got, err)
	}
	got, err = svc.Format(ctx, "2080-01-15", "[YYYY]-MM-DD", "en")
	if err != nil || got != "YYYY-01-15" {
		t.Errorf("literal layout = %q, %v", got, err)
	}
}

func TestFormatUsesActiveLabels(t *testing.T) {
	store := locale.NewStore(nil)
	svc := testService(t, WithLabels(store))
	custom := *locale.Default().EN
	custom.Months = append([]string{"Baishakh"}, custom.Months[1:]...)
	store.Swap(&locale.Labels{EN: &custom, NP: locale.Default().NP})

	got, err := svc.Format(context.Background(), "2080-01-15", "MMMM", "en")
	if err != nil || got != "Baishakh" {
		t.Errorf("format after swap = %q, %v", got, err)
	}
}

func TestMonth(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	page, err := svc.Month(ctx, MonthQuery{Kind: "bs", Year: 2083, Month: 7, Selected: "2083-07-15"})
	if err != nil {
		t.Fatal(err)
	}
	if page.Year != 2083 || page.Month != 6 || page.Title != "Kartik 2083" {
		t.Errorf("page = %d-%d %q", page.Year, page.Month, page.Title)
	}
	// Kartik 2083 starts on a Saturday.
	if c := page.Weeks[0][6]; c.Day != 1 || !c.Today {
		t.Errorf("today cell = %+v", c)
	}
	if c := page.Weeks[2][6]; c.Day != 15 || !c.Selected {
		t.Errorf("selected cell = %+v", c)
	}

	ad, err := svc.Month(ctx, MonthQuery{Kind: "AD", Year: 2026, Month: 10})
	if err != nil {
		t.Fatal(err)
	}
	// October 1 2026 is a Thursday.
	if c := ad.Weeks[2][6]; c.Day != 17 || !c.Today {
		t.Errorf("AD today cell = %+v", c)
	}

	if _, err := svc.Month(ctx, MonthQuery{Kind: "lunar", Year: 2083, Month: 1}); !errors.Is(err, apperr.ErrInvalidKind) {
		t.Errorf("kind err = %v", err)
	}
	if _, err := svc.Month(ctx, MonthQuery{Year: 2083, Month: 1, Selected: "2083-13-01"}); !errors.Is(err, apperr.ErrInvalidDateFormat) {
		t.Errorf("selected err = %v", err)
	}
	if _, err := svc.Month(ctx, MonthQuery{Year: 2095, Month: 1}); !errors.Is(err, apperr.ErrInvalidDate) {
		t.Errorf("year err = %v", err)
	}
}

func TestRange(t *testing.T) {
	r := testService(t).Range(context.Background())
	if r.StartBS.String() != "2000-01-01" || r.EndAD.String() != "2034-04-13" {
		t.Errorf("range = %+v", r)
	}
}
