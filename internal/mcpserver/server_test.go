package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/miti/internal/dateservice"
	"github.com/starford/miti/internal/testutil"
	"github.com/starford/miti/internal/view"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	// AD 2026-10-17 is BS 2083-07-01.
	svc := dateservice.NewService(dateservice.WithNow(testutil.Clock(2026, time.October, 17)))
	return New(svc)
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go has no direct "call tool" test helper, so the handlers are
	// called directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "today":
		result, err = srv.today(ctx, req)
	case "bs_to_ad":
		result, err = srv.bsToAD(ctx, req)
	case "ad_to_bs":
		result, err = srv.adToBS(ctx, req)
	case "shift_date":
		result, err = srv.shiftDate(ctx, req)
	case "format_date":
		result, err = srv.formatDate(ctx, req)
	case "month_calendar":
		result, err = srv.monthCalendar(ctx, req)
	case "get_format_tokens":
		result, err = srv.getFormatTokens(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func detail(t *testing.T, r *mcp.CallToolResult) dateservice.DateDetail {
	t.Helper()
	if r.IsError {
		t.Fatalf("tool error: %s", resultText(r))
	}
	var d dateservice.DateDetail
	if err := json.Unmarshal([]byte(resultText(r)), &d); err != nil {
		t.Fatalf("decode %q: %v", resultText(r), err)
	}
	return d
}

func TestToday(t *testing.T) {
	d := detail(t, callTool(t, testServer(t), "today", map[string]interface{}{"lang": "np"}))
	if d.BS != "2083-07-01" || d.MonthName != "कार्तिक" {
		t.Errorf("today = %+v", d)
	}
}

func TestConversions(t *testing.T) {
	srv := testServer(t)
	d := detail(t, callTool(t, srv, "bs_to_ad", map[string]interface{}{"date": "2053-10-19"}))
	if d.AD != "1997-02-01" {
		t.Errorf("bs_to_ad = %s", d.AD)
	}
	d = detail(t, callTool(t, srv, "ad_to_bs", map[string]interface{}{"date": "2024-04-13"}))
	if d.BS != "2081-01-01" || d.WeekdayName != "Saturday" {
		t.Errorf("ad_to_bs = %+v", d)
	}

	r := callTool(t, srv, "ad_to_bs", map[string]interface{}{"date": "1900-01-01"})
	if !r.IsError {
		t.Error("expected error before the supported range")
	}
	r = callTool(t, srv, "bs_to_ad", map[string]interface{}{})
	if !r.IsError {
		t.Error("expected error for missing date")
	}
}

func TestShiftDate(t *testing.T) {
	srv := testServer(t)
	d := detail(t, callTool(t, srv, "shift_date", map[string]interface{}{
		"date": "2080-12-30", "value": float64(1), "unit": "day",
	}))
	if d.BS != "2081-01-01" {
		t.Errorf("shift = %s", d.BS)
	}

	for name, args := range map[string]map[string]interface{}{
		"fractional": {"date": "2080-12-30", "value": 1.5, "unit": "day"},
		"bad unit":   {"date": "2080-12-30", "value": float64(1), "unit": "decade"},
		"no value":   {"date": "2080-12-30", "unit": "day"},
		"past end":   {"date": "2090-12-30", "value": float64(1), "unit": "d"},
		"huge value": {"date": "2080-12-30", "value": 1e300, "unit": "day"},
		"huge neg":   {"date": "2080-12-30", "value": -1e300, "unit": "week"},
		"just over":  {"date": "2080-12-30", "value": 1e7 + 1, "unit": "day"},
	} {
		if r := callTool(t, srv, "shift_date", args); !r.IsError {
			t.Errorf("%s: expected error, got %s", name, resultText(r))
		}
	}
}

func TestFormatDate(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "format_date", map[string]interface{}{
		"date": "2080-01-15", "layout": "ddd, D MMM YY",
	})
	if got := resultText(r); got != "Fri, 15 Bai 80" {
		t.Errorf("format = %q", got)
	}
	r = callTool(t, srv, "format_date", map[string]interface{}{"date": "2080-01-15", "lang": "np"})
	if got := resultText(r); got != "२०८०-०१-१५" {
		t.Errorf("default layout = %q", got)
	}
}

func TestMonthCalendar(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "month_calendar", map[string]interface{}{
		"kind": "BS", "year": float64(2083), "month": float64(7),
	})
	if r.IsError {
		t.Fatalf("month_calendar: %s", resultText(r))
	}
	var page view.Month
	if err := json.Unmarshal([]byte(resultText(r)), &page); err != nil {
		t.Fatal(err)
	}
	if page.Title != "Kartik 2083" || !page.Weeks[0][6].Today {
		t.Errorf("page = %q, first row %+v", page.Title, page.Weeks[0])
	}

	r = callTool(t, srv, "month_calendar", map[string]interface{}{"year": float64(1990), "month": float64(1)})
	if !r.IsError {
		t.Error("expected error for unsupported year")
	}
}

func TestFormatTokens(t *testing.T) {
	srv := testServer(t)
	text := resultText(callTool(t, srv, "get_format_tokens", nil))
	for _, want := range []string{"`YYYY`", "`dddd`", "`[...]`", "2090-12-30"} {
		if !strings.Contains(text, want) {
			t.Errorf("contract missing %s", want)
		}
	}

	contents, err := srv.readFormatTokensResource(context.Background(), mcp.ReadResourceRequest{})
	if err != nil || len(contents) != 1 {
		t.Fatalf("resource = %v, %v", contents, err)
	}
	if tc, ok := contents[0].(mcp.TextResourceContents); !ok || tc.Text != FormatTokensContract {
		t.Errorf("resource contents = %+v", contents[0])
	}
}
