package graph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itops-tools/user-provisioning/global"
)

func TestClient_GetAvailableLicenses(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/subscribedSkus", r.URL.Path)
		_, _ = w.Write([]byte(`{"value":[
			{"id":"cat-1","skuId":"sku-basic","skuPartNumber":"O365_BUSINESS_ESSENTIALS","consumedUnits":7,"prepaidUnits":{"enabled":10}},
			{"id":"cat-2","skuId":"sku-custom","skuPartNumber":"CUSTOM_SKU","consumedUnits":1,"prepaidUnits":{"enabled":5}}
		]}`))
	}))

	licenses, err := client.GetAvailableLicenses(context.Background())

	require.NoError(t, err)
	require.Len(t, licenses, 2)
	assert.Equal(t, "Microsoft 365 Business Basic", licenses[0].Name)
	assert.Equal(t, "Available: 3 of 10", licenses[0].Description)
	// unknown part numbers keep their raw name
	assert.Equal(t, "CUSTOM_SKU", licenses[1].Name)
}

func TestClient_GetAvailableLicensesFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	fallback := []global.License{{ID: "1", Name: "Microsoft 365 Business Basic", SkuID: "sku-basic"}}
	client := newClient(global.NewRESTClient(server.URL, global.StaticTokenProvider("test-token")), true, fallback)

	licenses, err := client.GetAvailableLicenses(context.Background())

	require.NoError(t, err)
	require.Len(t, licenses, 1)
	assert.Equal(t, "sku-basic", licenses[0].SkuID)

	// the caller gets a copy, not the configured slice
	licenses[0].Name = "changed"
	assert.Equal(t, "Microsoft 365 Business Basic", fallback[0].Name)
}

func TestClient_GetUserLicenses(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/aad-1":
			assert.Equal(t, "id,assignedLicenses", r.URL.Query().Get("$select"))
			_, _ = w.Write([]byte(`{"id":"aad-1","assignedLicenses":[{"skuId":"sku-basic"},{"skuId":"sku-unknown"}]}`))
		case "/subscribedSkus":
			_, _ = w.Write([]byte(`{"value":[{"id":"cat-1","skuId":"sku-basic","skuPartNumber":"O365_BUSINESS_ESSENTIALS","consumedUnits":1,"prepaidUnits":{"enabled":10}}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	licenses, err := client.GetUserLicenses(context.Background(), "aad-1")

	require.NoError(t, err)
	require.Len(t, licenses, 2)

	assert.Equal(t, "Microsoft 365 Business Basic", licenses[0].Name)
	assert.True(t, licenses[0].IsSelected)

	// SKUs missing from the catalog are synthesized, not dropped
	assert.Equal(t, "sku-unknown", licenses[1].SkuID)
	assert.Equal(t, "License sku-unknown", licenses[1].Name)
	assert.NotEmpty(t, licenses[1].ID)
	assert.True(t, licenses[1].IsSelected)
}

func TestClient_AssignLicense(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/aad-1/assignLicense", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		added, ok := body["addLicenses"].([]any)
		require.True(t, ok)
		require.Len(t, added, 1)
		assert.Equal(t, map[string]any{"skuId": "f245ecc8-75af-4f8e-b61f-27d8114de5f3"}, added[0])

		removed, ok := body["removeLicenses"].([]any)
		require.True(t, ok)
		assert.Empty(t, removed)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"aad-1"}`))
	}))

	err := client.AssignLicense(context.Background(), "aad-1", "F245ECC8-75AF-4F8E-B61F-27D8114DE5F3")
	require.NoError(t, err)
}

func TestClient_AssignLicenseFailure(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"no units available"}}`))
	}))

	err := client.AssignLicense(context.Background(), "aad-1", "sku-basic")

	var mutationErr *global.BackendMutationError
	require.ErrorAs(t, err, &mutationErr)
	assert.Equal(t, "assign license", mutationErr.Op)
}

func TestClient_RemoveLicense(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		removed, ok := body["removeLicenses"].([]any)
		require.True(t, ok)
		require.Len(t, removed, 1)
		assert.Equal(t, "sku-basic", removed[0])

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"aad-1"}`))
	}))

	require.NoError(t, client.RemoveLicense(context.Background(), "aad-1", "sku-basic"))
}

func TestFriendlyLicenseName(t *testing.T) {
	assert.Equal(t, "Power BI Pro", friendlyLicenseName("POWER_BI_PRO"))
	assert.Equal(t, "SOMETHING_ELSE", friendlyLicenseName("SOMETHING_ELSE"))
}
