package horizon_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	horizon "github.com/aurora-rs/horizon-go"
	"github.com/aurora-rs/horizon-go/api/ledgers"
	"github.com/aurora-rs/horizon-go/horizontest"
)

func ledgerJSON(sequence int32, token string) string {
	return fmt.Sprintf(`{"id":"ledger-%s","paging_token":%q,"sequence":%d,"hash":"abc","total_coins":"100","fee_pool":"0"}`,
		token, token, sequence)
}

func newStreamClient(t *testing.T, server *horizontest.MockServer) *horizon.Client {
	t.Helper()
	client, err := horizon.NewClient(server.URL(), horizon.WithHTTPClient(server.HTTPClient()))
	require.NoError(t, err)
	return client
}

func TestStreamDeliversEvents(t *testing.T) {
	server := horizontest.NewMockServer()
	defer server.Close()

	script := horizontest.EventScript("1", "message", ledgerJSON(1, "1")) +
		horizontest.EventScript("2", "", ledgerJSON(2, "2"))
	server.HandleSSE("/ledgers", script)

	client := newStreamClient(t, server)
	sub := horizon.Stream(context.Background(), client, ledgers.All())
	defer sub.Close()

	first, err := sub.Next()
	require.NoError(t, err)
	assert.Equal(t, int32(1), first.Sequence)
	assert.Equal(t, "1", sub.LastID())

	second, err := sub.Next()
	require.NoError(t, err)
	assert.Equal(t, int32(2), second.Sequence)
	assert.Equal(t, "2", sub.LastID())

	// Clean server close ends the sequence without an error.
	_, err = sub.Next()
	assert.ErrorIs(t, err, horizon.Done)

	req, ok := server.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "text/event-stream", req.Accept)
	assert.Empty(t, req.LastEventID)
}

func TestStreamWithoutIDsLeavesCursorUnset(t *testing.T) {
	server := horizontest.NewMockServer()
	defer server.Close()
	server.HandleSSE("/ledgers", horizontest.EventScript("", "", ledgerJSON(5, "5")))

	client := newStreamClient(t, server)
	sub := horizon.Stream(context.Background(), client, ledgers.All())
	defer sub.Close()

	item, err := sub.Next()
	require.NoError(t, err)
	assert.Equal(t, "5", item.PagingToken)
	assert.Empty(t, sub.LastID())
}

func TestStreamSeedsLastEventIDHeader(t *testing.T) {
	server := horizontest.NewMockServer()
	defer server.Close()
	server.HandleSSE("/ledgers", "")

	client := newStreamClient(t, server)
	sub := horizon.Stream(context.Background(), client, ledgers.All().WithCursor("now"),
		horizon.WithLastID("75821"))
	defer sub.Close()

	assert.Equal(t, "75821", sub.LastID())

	_, err := sub.Next()
	assert.ErrorIs(t, err, horizon.Done)

	req, ok := server.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "75821", req.LastEventID)
	assert.Equal(t, "cursor=now", req.Query)
}

func TestStreamSkipsBookkeepingFrames(t *testing.T) {
	server := horizontest.NewMockServer()
	defer server.Close()

	// Named frames and dataless frames update the cursor but are not
	// surfaced.
	script := horizontest.EventScript("10", "open", `"hello"`) +
		": keepalive comment\n" +
		"id: 11\n\n" +
		horizontest.EventScript("12", "message", ledgerJSON(12, "12")) +
		"id: 13\nevent: heartbeat\n\n"
	server.HandleSSE("/ledgers", script)

	client := newStreamClient(t, server)
	sub := horizon.Stream(context.Background(), client, ledgers.All())
	defer sub.Close()

	item, err := sub.Next()
	require.NoError(t, err)
	assert.Equal(t, int32(12), item.Sequence)
	assert.Equal(t, "12", sub.LastID())

	_, err = sub.Next()
	assert.ErrorIs(t, err, horizon.Done)
	assert.Equal(t, "13", sub.LastID())
}

func TestStreamUndecodablePayloadIsTerminal(t *testing.T) {
	server := horizontest.NewMockServer()
	defer server.Close()
	server.HandleSSE("/ledgers", horizontest.EventScript("1", "message", "not json"))

	client := newStreamClient(t, server)
	sub := horizon.Stream(context.Background(), client, ledgers.All())
	defer sub.Close()

	_, err := sub.Next()
	require.Error(t, err)
	require.NotErrorIs(t, err, horizon.Done)

	var herr *horizon.Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, "stream", herr.Op)

	// The error is surfaced exactly once.
	_, err = sub.Next()
	assert.ErrorIs(t, err, horizon.Done)
	// The cursor still covers the offending event.
	assert.Equal(t, "1", sub.LastID())
}

func TestStreamMalformedFrameIsTerminal(t *testing.T) {
	server := horizontest.NewMockServer()
	defer server.Close()
	server.HandleSSE("/ledgers", "this line has no field separator\n")

	client := newStreamClient(t, server)
	sub := horizon.Stream(context.Background(), client, ledgers.All())
	defer sub.Close()

	_, err := sub.Next()
	var herr *horizon.Error
	require.ErrorAs(t, err, &herr)

	_, err = sub.Next()
	assert.ErrorIs(t, err, horizon.Done)
}

func TestStreamConnectFailureStatus(t *testing.T) {
	server := horizontest.NewMockServer()
	defer server.Close()
	server.HandleJSON("/ledgers", http.StatusServiceUnavailable, `{}`)

	client := newStreamClient(t, server)
	sub := horizon.Stream(context.Background(), client, ledgers.All())
	defer sub.Close()

	_, err := sub.Next()
	require.ErrorIs(t, err, horizon.ErrStream)

	var herr *horizon.Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, http.StatusServiceUnavailable, herr.StatusCode)

	_, err = sub.Next()
	assert.ErrorIs(t, err, horizon.Done)
}

func TestStreamCancelledContext(t *testing.T) {
	server := horizontest.NewMockServer()
	defer server.Close()
	server.HandleSSE("/ledgers", horizontest.EventScript("1", "message", ledgerJSON(1, "1")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newStreamClient(t, server)
	sub := horizon.Stream(ctx, client, ledgers.All())
	defer sub.Close()

	_, err := sub.Next()
	assert.ErrorIs(t, err, horizon.Done)
}

func TestStreamCloseReleasesConnectionOnce(t *testing.T) {
	mt := horizontest.NewMockTransport()
	body := mt.AddSSEResponse(
		horizontest.EventScript("1", "message", ledgerJSON(1, "1")) +
			horizontest.EventScript("2", "message", ledgerJSON(2, "2")))

	client, err := horizon.NewClient("https://horizon.example",
		horizon.WithHTTPClient(&http.Client{Transport: mt}))
	require.NoError(t, err)

	sub := horizon.Stream(context.Background(), client, ledgers.All())

	_, err = sub.Next()
	require.NoError(t, err)

	require.NoError(t, sub.Close())
	assert.Equal(t, 1, body.CloseCount())

	// Close is idempotent and Next performs no further I/O.
	require.NoError(t, sub.Close())
	assert.Equal(t, 1, body.CloseCount())

	_, err = sub.Next()
	assert.ErrorIs(t, err, horizon.Done)
	assert.False(t, body.ReadAfterClose())
}

func TestStreamCloseWhileStreaming(t *testing.T) {
	server := horizontest.NewMockServer()
	defer server.Close()

	// Stream frames continuously so Close races an actively pulling Next.
	server.Handle("/ledgers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		flusher := w.(http.Flusher)
		for i := 1; ; i++ {
			select {
			case <-r.Context().Done():
				return
			default:
			}
			fmt.Fprint(w, horizontest.EventScript(strconv.Itoa(i), "message", ledgerJSON(int32(i), strconv.Itoa(i))))
			flusher.Flush()
			time.Sleep(time.Millisecond)
		}
	})

	client := newStreamClient(t, server)
	sub := horizon.Stream(context.Background(), client, ledgers.All())

	errCh := make(chan error, 1)
	go func() {
		for {
			_, err := sub.Next()
			if err != nil {
				errCh <- err
				return
			}
		}
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, sub.Close())

	select {
	case err := <-errCh:
		// Caller-initiated teardown is not an error.
		assert.ErrorIs(t, err, horizon.Done)
	case <-time.After(5 * time.Second):
		t.Fatal("Next did not return after Close")
	}
}

func TestStreamResumeAcrossSubscriptions(t *testing.T) {
	server := horizontest.NewMockServer()
	defer server.Close()

	server.HandleSSESequence("/ledgers",
		horizontest.EventScript("1", "message", ledgerJSON(1, "1"))+
			horizontest.EventScript("2", "message", ledgerJSON(2, "2")),
		horizontest.EventScript("3", "message", ledgerJSON(3, "3")))

	client := newStreamClient(t, server)

	first := horizon.Stream(context.Background(), client, ledgers.All())
	for {
		_, err := first.Next()
		if errors.Is(err, horizon.Done) {
			break
		}
		require.NoError(t, err)
	}
	first.Close()
	require.Equal(t, "2", first.LastID())

	second := horizon.Stream(context.Background(), client, ledgers.All(),
		horizon.WithLastID(first.LastID()))
	defer second.Close()

	item, err := second.Next()
	require.NoError(t, err)
	assert.Equal(t, int32(3), item.Sequence)

	reqs := server.Requests()
	require.Len(t, reqs, 2)
	assert.Empty(t, reqs[0].LastEventID)
	assert.Equal(t, "2", reqs[1].LastEventID)
}

func TestResourcesChannel(t *testing.T) {
	server := horizontest.NewMockServer()
	defer server.Close()
	server.HandleSSE("/ledgers",
		horizontest.EventScript("1", "message", ledgerJSON(1, "1"))+
			horizontest.EventScript("2", "message", ledgerJSON(2, "2")))

	client := newStreamClient(t, server)
	items, errs := horizon.Resources(context.Background(), client, ledgers.All())

	var sequences []int32
	for item := range items {
		sequences = append(sequences, item.Sequence)
	}
	require.NoError(t, <-errs)
	assert.Equal(t, []int32{1, 2}, sequences)
}
