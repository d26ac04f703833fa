package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jpl-au/chtools/extension"
	"github.com/jpl-au/chtools/internal/company"
	"github.com/jpl-au/chtools/internal/companieshouse"
	"github.com/jpl-au/chtools/internal/companieshouse/chtest"
	"github.com/jpl-au/chtools/internal/report"
	"github.com/jpl-au/chtools/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupHandlers returns handlers backed by a fake upstream.
func setupHandlers(t *testing.T) (*handlers, *chtest.Server) {
	t.Helper()
	up := chtest.New()
	t.Cleanup(up.Close)

	svc, err := company.New(company.Options{Client: companieshouse.Options{BaseURL: up.URL}})
	require.NoError(t, err)
	return &handlers{svc: svc}, up
}

func call(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

// resultText returns the text of a single-content result.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

// errorBody decodes an error result.
func errorBody(t *testing.T, res *mcp.CallToolResult) service.ErrorBody {
	t.Helper()
	require.True(t, res.IsError, "expected error result")
	var body service.ErrorBody
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &body))
	return body
}

func TestSearchCompanies(t *testing.T) {
	h, _ := setupHandlers(t)

	res, err := h.searchCompanies(context.Background(), call(ToolSearch, map[string]any{
		"q": "acme", "api_key": chtest.Key,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var out companieshouse.SearchResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, chtest.Company, out.Items[0].CompanyNumber)
}

func TestSearchCompanies_StringPaging(t *testing.T) {
	h, up := setupHandlers(t)

	res, err := h.searchCompanies(context.Background(), call(ToolSearch, map[string]any{
		"q": "acme", "items_per_page": "3", "api_key": chtest.Key,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, []string{"/search/companies?items_per_page=3&q=acme"}, up.Requests())
}

func TestToolErrors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		code string
	}{
		{"missing key", map[string]any{"company_number": chtest.Company}, service.CodeUnauthorised},
		{"blank key", map[string]any{"company_number": chtest.Company, "api_key": "  "}, service.CodeUnauthorised},
		{"wrong key", map[string]any{"company_number": chtest.Company, "api_key": "nope"}, service.CodeUnauthorised},
		{"bad number", map[string]any{"company_number": "12-34", "api_key": chtest.Key}, service.CodeValidation},
		{"missing number", map[string]any{"api_key": chtest.Key}, service.CodeValidation},
		{"unknown company", map[string]any{"company_number": "99999999", "api_key": chtest.Key}, service.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupHandlers(t)
			res, err := h.getProfile(context.Background(), call(ToolProfile, tt.args))
			require.NoError(t, err, "tool errors are results, not protocol errors")
			body := errorBody(t, res)
			assert.Equal(t, tt.code, body.Error)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestToolErrors_KeyNeverEchoed(t *testing.T) {
	h, _ := setupHandlers(t)
	const secret = "super-secret-key-value"

	res, err := h.generateReport(context.Background(), call(ToolReport, map[string]any{
		"company_number": chtest.Company, "api_key": secret,
	}))
	require.NoError(t, err)
	body := errorBody(t, res)
	assert.Equal(t, service.CodeUnauthorised, body.Error)
	assert.NotContains(t, resultText(t, res), secret)
}

func TestValidationMakesNoRequest(t *testing.T) {
	h, up := setupHandlers(t)

	res, err := h.getOfficers(context.Background(), call(ToolOfficers, map[string]any{
		"company_number": chtest.Company, "items_per_page": 500, "api_key": chtest.Key,
	}))
	require.NoError(t, err)
	assert.Equal(t, service.CodeValidation, errorBody(t, res).Error)
	assert.Empty(t, up.Requests())
}

func TestGenerateReport(t *testing.T) {
	h, _ := setupHandlers(t)

	res, err := h.generateReport(context.Background(), call(ToolReport, map[string]any{
		"company_number": "1234567", "api_key": chtest.Key,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &r))
	assert.Equal(t, chtest.Company, r.CompanyNumber)
	assert.Equal(t, "ACME WIDGETS LIMITED", r.CompanyName)
	assert.Len(t, r.ActiveOfficers, 2)
	assert.Len(t, r.BeneficialOwners, 2)
	assert.Empty(t, r.Unavailable)
	require.NotNil(t, r.OwnershipSummary["Holdco Limited"])
	assert.Equal(t, 37.5, *r.OwnershipSummary["Holdco Limited"])
}

func TestGenerateReport_MatchesProfileTool(t *testing.T) {
	h, _ := setupHandlers(t)
	args := map[string]any{"company_number": chtest.Company, "api_key": chtest.Key}

	pres, err := h.getProfile(context.Background(), call(ToolProfile, args))
	require.NoError(t, err)
	rres, err := h.generateReport(context.Background(), call(ToolReport, args))
	require.NoError(t, err)

	var r struct {
		Profile json.RawMessage `json:"profile"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, rres)), &r))
	assert.JSONEq(t, resultText(t, pres), string(r.Profile))
}

func TestGenerateReport_PartialFailure(t *testing.T) {
	h, _ := setupHandlers(t)

	res, err := h.generateReport(context.Background(), call(ToolReport, map[string]any{
		"company_number": chtest.FlakyCompany, "api_key": chtest.Key,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &r))
	assert.Contains(t, r.Unavailable, report.SectionInsolvency)
	assert.Equal(t, 2, r.ChargesSummary.Total)
}

func TestGenerateReport_UnknownCompanyStops(t *testing.T) {
	h, up := setupHandlers(t)

	res, err := h.generateReport(context.Background(), call(ToolReport, map[string]any{
		"company_number": "99999999", "api_key": chtest.Key,
	}))
	require.NoError(t, err)
	assert.Equal(t, service.CodeNotFound, errorBody(t, res).Error)
	assert.Equal(t, []string{"/company/99999999"}, up.Requests())
}

func TestGetFilings_Category(t *testing.T) {
	h, up := setupHandlers(t)

	res, err := h.getFilings(context.Background(), call(ToolFilings, map[string]any{
		"company_number": chtest.Company, "category": "accounts", "api_key": chtest.Key,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))
	require.Len(t, up.Requests(), 1)
	assert.Contains(t, up.Requests()[0], "category=accounts")

	res, err = h.getFilings(context.Background(), call(ToolFilings, map[string]any{
		"company_number": chtest.Company, "category": "gossip", "api_key": chtest.Key,
	}))
	require.NoError(t, err)
	assert.Equal(t, service.CodeValidation, errorBody(t, res).Error)
}

func TestEmptyRegisterIsNotFound(t *testing.T) {
	h, _ := setupHandlers(t)

	res, err := h.getCharges(context.Background(), call(ToolCharges, map[string]any{
		"company_number": chtest.Company, "api_key": chtest.Key,
	}))
	require.NoError(t, err)
	assert.Equal(t, service.CodeNotFound, errorBody(t, res).Error)
}

func TestNew_ListsTools(t *testing.T) {
	h, _ := setupHandlers(t)
	s, err := New(h.svc, extension.NewContext(h.svc, nil))
	require.NoError(t, err)

	resp := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var out struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(data, &out))

	var names []string
	for _, tool := range out.Result.Tools {
		names = append(names, tool.Name)
	}
	for _, want := range []string{
		ToolSearch, ToolProfile, ToolOfficers, ToolFilings, ToolCharges,
		ToolInsolvency, ToolPSC, ToolAddress, ToolReport,
	} {
		assert.Contains(t, names, want)
	}
}

func TestHandler_Healthz(t *testing.T) {
	h, _ := setupHandlers(t)
	s, err := New(h.svc, extension.NewContext(h.svc, nil))
	require.NoError(t, err)

	srv := httptest.NewServer(Handler(s, "/mcp"))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestServe_UnknownTransport(t *testing.T) {
	h, _ := setupHandlers(t)
	s, err := New(h.svc, extension.NewContext(h.svc, nil))
	require.NoError(t, err)

	err = Serve(context.Background(), s, Options{Transport: "carrier-pigeon"})
	assert.ErrorIs(t, err, ErrUnknownTransport)
}
