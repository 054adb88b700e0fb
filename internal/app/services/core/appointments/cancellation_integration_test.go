package appointments

import (
	"appointment-booking-service/internal/app/config"
	"appointment-booking-service/internal/app/services/strapi"
	strapi_appointments "appointment-booking-service/internal/app/services/strapi/appointments"
	"appointment-booking-service/internal/pkg/exceptions"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStrapi struct {
	mu          sync.Mutex
	listBody    string
	rawQueries  []string
	deleted     []string
	failDelete  string
	deleteDelay time.Duration
}

func (f *fakeStrapi) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodDelete && f.deleteDelay > 0 {
		time.Sleep(f.deleteDelay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		f.rawQueries = append(f.rawQueries, r.URL.RawQuery)
		w.Write([]byte(f.listBody))
	case http.MethodDelete:
		id := strings.TrimPrefix(r.URL.Path, "/api/appointments/")
		f.deleted = append(f.deleted, id)
		if id == f.failDelete {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"data":null,"error":{"status":500,"name":"InternalServerError","message":"Internal Server Error"}}`))
			return
		}
		w.Write([]byte(`{"data":{"id":` + id + `,"attributes":{}}}`))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newCancellationUsecase(t *testing.T, backend *fakeStrapi) *appointmentUsecase {
	t.Helper()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	logger := zap.NewNop()
	resource := strapi.NewResourceClient(config.Strapi{BaseUrl: server.URL + "/api", ApiKey: "key"}, logger)
	client := strapi_appointments.NewAppointmentStrapiClient(resource)
	return NewAppointmentUsecase(client, nil, logger).(*appointmentUsecase)
}

func TestCancelAppointmentByEmailDate_AgainstBackend(t *testing.T) {
	t.Run("queries once and deletes both matches", func(t *testing.T) {
		backend := &fakeStrapi{
			listBody: `{"data":[` +
				`{"id":11,"attributes":{"Email":"a@b.com","Date":"2025-04-09"}},` +
				`{"id":12,"attributes":{"Email":"a@b.com","Date":"2025-04-09"}}` +
				`],"meta":{"pagination":{"total":2}}}`,
		}
		usecase := newCancellationUsecase(t, backend)

		acks, err := usecase.CancelAppointmentByEmailDate(context.Background(), "a@b.com", "09/04/2025")

		require.NoError(t, err)
		require.Len(t, acks, 2)
		assert.Equal(t, "11", acks[0].ID)
		assert.Equal(t, "12", acks[1].ID)

		require.Len(t, backend.rawQueries, 1)
		assert.Contains(t, backend.rawQueries[0], "filters[Date][$eq]=2025-04-09")
		assert.Contains(t, backend.rawQueries[0], "filters[Email][$eq]=a%40b.com")
		assert.ElementsMatch(t, []string{"11", "12"}, backend.deleted)
	})

	t.Run("empty result deletes nothing", func(t *testing.T) {
		backend := &fakeStrapi{listBody: `{"data":[],"meta":{}}`}
		usecase := newCancellationUsecase(t, backend)

		_, err := usecase.CancelAppointmentByEmailDate(context.Background(), "a@b.com", "09/04/2025")

		assert.True(t, exceptions.IsKind(err, exceptions.KindNoMatch))
		assert.Empty(t, backend.deleted)
	})

	t.Run("failed delete reports partial failure after all deletes ran", func(t *testing.T) {
		backend := &fakeStrapi{
			listBody: `{"data":[` +
				`{"id":1,"Email":"a@b.com","Date":"2025-04-09"},` +
				`{"id":2,"Email":"a@b.com","Date":"2025-04-09"},` +
				`{"id":3,"Email":"a@b.com","Date":"2025-04-09"}` +
				`]}`,
			failDelete: "2",
		}
		usecase := newCancellationUsecase(t, backend)

		_, err := usecase.CancelAppointmentByEmailDate(context.Background(), "a@b.com", "09/04/2025")

		assert.True(t, exceptions.IsKind(err, exceptions.KindPartialFailure))
		assert.ElementsMatch(t, []string{"1", "2", "3"}, backend.deleted)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, string(customErr.Payload), "InternalServerError")
	})

	t.Run("slow deletes are not cut short", func(t *testing.T) {
		backend := &fakeStrapi{
			listBody: `{"data":[` +
				`{"id":21,"attributes":{"Email":"a@b.com","Date":"2025-04-09"}},` +
				`{"id":22,"attributes":{"Email":"a@b.com","Date":"2025-04-09"}}` +
				`]}`,
			deleteDelay: 300 * time.Millisecond,
		}
		usecase := newCancellationUsecase(t, backend)

		acks, err := usecase.CancelAppointmentByEmailDate(context.Background(), "a@b.com", "09/04/2025")

		require.NoError(t, err)
		require.Len(t, acks, 2)
		assert.ElementsMatch(t, []string{"21", "22"}, backend.deleted)
	})
}
