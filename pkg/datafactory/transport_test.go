package datafactory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

type fakeCredential struct{}

func (fakeCredential) GetToken(ctx context.Context, options policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: "fake-token", ExpiresOn: time.Now().Add(time.Hour)}, nil
}

// fakeFactory serves the management API surface the client touches:
// the subscription, the factory resource, the paginated trigger
// collection and the per-trigger start/stop endpoints.
type fakeFactory struct {
	factoryStatus int            // existence check status; 0 means 200
	pages         []string       // trigger list bodies, served in order
	toggleStatus  map[string]int // "trigger/action" -> status; missing means 200
	toggleErr     map[string]error
	toggleDelay   time.Duration

	mu          sync.Mutex
	listQueries []string
	toggleCalls []string
	inFlight    int
	maxInFlight int
}

func (f *fakeFactory) Do(req *http.Request) (*http.Response, error) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodGet && strings.HasSuffix(path, "/triggers"):
		f.mu.Lock()
		page := len(f.listQueries)
		f.listQueries = append(f.listQueries, req.URL.RawQuery)
		f.mu.Unlock()
		if page >= len(f.pages) {
			return jsonResponse(req, http.StatusInternalServerError, `{"error":{"code":"TooManyPages","message":"unexpected list call"}}`), nil
		}
		return jsonResponse(req, http.StatusOK, f.pages[page]), nil

	case req.Method == http.MethodPost && strings.Contains(path, "/triggers/"):
		segments := strings.Split(strings.Trim(path, "/"), "/")
		action := segments[len(segments)-1]
		trigger := segments[len(segments)-2]
		key := trigger + "/" + action

		f.mu.Lock()
		f.toggleCalls = append(f.toggleCalls, key)
		f.inFlight++
		if f.inFlight > f.maxInFlight {
			f.maxInFlight = f.inFlight
		}
		f.mu.Unlock()

		time.Sleep(f.toggleDelay)

		f.mu.Lock()
		f.inFlight--
		err := f.toggleErr[key]
		status, failed := f.toggleStatus[key]
		f.mu.Unlock()

		if err != nil {
			return nil, err
		}
		if failed {
			return jsonResponse(req, status, `{"error":{"code":"TriggerToggleFailed","message":"toggle rejected"}}`), nil
		}
		return jsonResponse(req, http.StatusOK, `{}`), nil

	case req.Method == http.MethodGet && strings.Contains(path, "/factories/"):
		if f.factoryStatus != 0 && f.factoryStatus != http.StatusOK {
			return jsonResponse(req, f.factoryStatus, `{"error":{"code":"ResourceNotFound","message":"factory not found"}}`), nil
		}
		return jsonResponse(req, http.StatusOK, `{"id":"/fake/factory","name":"adf-test","location":"eastus","properties":{"provisioningState":"Succeeded"}}`), nil

	case req.Method == http.MethodGet && strings.HasPrefix(path, "/subscriptions/"):
		return jsonResponse(req, http.StatusOK, `{"id":"/subscriptions/00000000-0000-0000-0000-000000000001","subscriptionId":"00000000-0000-0000-0000-000000000001","displayName":"Test Subscription","state":"Enabled"}`), nil
	}

	return jsonResponse(req, http.StatusNotFound, `{"error":{"code":"NotFound","message":"unexpected request"}}`), nil
}

func (f *fakeFactory) recordedToggles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.toggleCalls...)
}

func (f *fakeFactory) recordedListQueries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.listQueries...)
}

func (f *fakeFactory) peakInFlight() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.maxInFlight
}

func jsonResponse(req *http.Request, status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Request:    req,
	}
}

func triggerPage(nextLink string, names ...string) string {
	items := make([]string, 0, len(names))
	for _, name := range names {
		items = append(items, fmt.Sprintf(`{"id":"/fake/triggers/%s","name":"%s","properties":{"type":"ScheduleTrigger","runtimeState":"Stopped"}}`, name, name))
	}
	page := `{"value":[` + strings.Join(items, ",") + `]`
	if nextLink != "" {
		page += fmt.Sprintf(`,"nextLink":"%s"`, nextLink)
	}
	return page + `}`
}

func fakeClientOptions(f *fakeFactory) *arm.ClientOptions {
	return &arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{Transport: f},
	}
}

func testLocator() ResourceLocator {
	return ResourceLocator{
		SubscriptionID: "00000000-0000-0000-0000-000000000001",
		ResourceGroup:  "rg-test",
		FactoryName:    "adf-test",
	}
}

func testClient(t interface{ Fatalf(string, ...any) }, f *fakeFactory) *Client {
	client, err := NewClient(fakeCredential{}, testLocator(), fakeClientOptions(f))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}
