package strapi

import (
	"appointment-booking-service/internal/app/config"
	"appointment-booking-service/internal/app/contracts"
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/exceptions"
	"appointment-booking-service/internal/pkg/queries"
	"appointment-booking-service/internal/pkg/strapi_dto"
	"appointment-booking-service/internal/pkg/utils"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type resourceClient struct {
	BaseUrl    string
	ApiKey     string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewResourceClient builds a client bound to one backend and one bearer key.
// The returned client keeps no per-call state and is safe for concurrent use.
func NewResourceClient(strapiConfig config.Strapi, logger *zap.Logger) contracts.ResourceClient {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if strapiConfig.MaxIdleConnsPerHost > 0 {
		transport.MaxIdleConnsPerHost = strapiConfig.MaxIdleConnsPerHost
	}

	var limiter *rate.Limiter
	if strapiConfig.MaxRequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(strapiConfig.MaxRequestsPerSecond), strapiConfig.MaxRequestsPerSecond)
	}

	return &resourceClient{
		BaseUrl:    strings.TrimRight(strapiConfig.BaseUrl, "/"),
		ApiKey:     strapiConfig.ApiKey,
		HTTPClient: &http.Client{Transport: transport},
		Limiter:    limiter,
		Log:        logger,
	}
}

func (c *resourceClient) Query(ctx context.Context, collection string, query *queries.Query) ([]strapi_dto.Entry, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("resourceClient.Query called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collection),
	)

	params := query.Params()
	params[constvars.LoggingCollectionKey] = collection

	target := c.buildURL(collection, "", query)
	c.Log.Debug("resourceClient.Query built URL",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryParamsKey, query.Encode()),
		zap.String(constvars.LoggingStrapiUrlKey, target),
	)

	_, body, err := c.send(ctx, constvars.OperationQuery, collection, constvars.MethodGet, target, nil, params)
	if err != nil {
		return nil, err
	}

	var result strapi_dto.ListResponse
	err = json.Unmarshal(body, &result)
	if err != nil {
		c.Log.Error("resourceClient.Query error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, collection).WithOperation(constvars.OperationQuery, params).WithPayload(body)
	}

	c.Log.Info("resourceClient.Query succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collection),
		zap.Int(constvars.LoggingEntryCountKey, len(result.Data)),
	)
	return result.Data, nil
}

func (c *resourceClient) FindByID(ctx context.Context, collection, id string, query *queries.Query) (*strapi_dto.Entry, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("resourceClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collection),
		zap.String(constvars.LoggingEntryIDKey, id),
	)

	params := query.Params()
	params[constvars.LoggingCollectionKey] = collection
	params[constvars.LoggingEntryIDKey] = id

	_, body, err := c.send(ctx, constvars.OperationFindByID, collection, constvars.MethodGet, c.buildURL(collection, id, query), nil, params)
	if err != nil {
		return nil, err
	}

	entry, err := c.decodeSingle(body, constvars.OperationFindByID, collection, params)
	if err != nil {
		c.Log.Error("resourceClient.FindByID error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("resourceClient.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntryIDKey, entry.IDString()),
	)
	return entry, nil
}

func (c *resourceClient) Create(ctx context.Context, collection string, payload interface{}) (*strapi_dto.Entry, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("resourceClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collection),
	)

	params := map[string]string{constvars.LoggingCollectionKey: collection}

	requestJSON, err := json.Marshal(strapi_dto.DataEnvelope{Data: payload})
	if err != nil {
		c.Log.Error("resourceClient.Create error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err).WithOperation(constvars.OperationCreate, params)
	}

	_, body, err := c.send(ctx, constvars.OperationCreate, collection, constvars.MethodPost, c.buildURL(collection, "", nil), requestJSON, params)
	if err != nil {
		return nil, err
	}

	entry, err := c.decodeSingle(body, constvars.OperationCreate, collection, params)
	if err != nil {
		c.Log.Error("resourceClient.Create error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("resourceClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collection),
		zap.String(constvars.LoggingEntryIDKey, entry.IDString()),
	)
	return entry, nil
}

func (c *resourceClient) Update(ctx context.Context, collection, id string, payload interface{}) (*strapi_dto.Entry, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("resourceClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collection),
		zap.String(constvars.LoggingEntryIDKey, id),
	)

	params := map[string]string{
		constvars.LoggingCollectionKey: collection,
		constvars.LoggingEntryIDKey:    id,
	}

	requestJSON, err := json.Marshal(strapi_dto.DataEnvelope{Data: payload})
	if err != nil {
		c.Log.Error("resourceClient.Update error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err).WithOperation(constvars.OperationUpdate, params)
	}

	_, body, err := c.send(ctx, constvars.OperationUpdate, collection, constvars.MethodPut, c.buildURL(collection, id, nil), requestJSON, params)
	if err != nil {
		return nil, err
	}

	entry, err := c.decodeSingle(body, constvars.OperationUpdate, collection, params)
	if err != nil {
		c.Log.Error("resourceClient.Update error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("resourceClient.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntryIDKey, entry.IDString()),
	)
	return entry, nil
}

// DeleteByID deletes one entry. A successful status with an unreadable body
// still counts as deleted; the acknowledgement then carries no data.
func (c *resourceClient) DeleteByID(ctx context.Context, collection, id string) (*strapi_dto.DeleteAcknowledgement, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("resourceClient.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collection),
		zap.String(constvars.LoggingEntryIDKey, id),
	)

	params := map[string]string{
		constvars.LoggingCollectionKey: collection,
		constvars.LoggingEntryIDKey:    id,
	}

	statusCode, body, err := c.send(ctx, constvars.OperationDeleteByID, collection, constvars.MethodDelete, c.buildURL(collection, id, nil), nil, params)
	if err != nil {
		return nil, err
	}

	ack := &strapi_dto.DeleteAcknowledgement{
		ID:         id,
		StatusCode: statusCode,
	}
	if len(bytes.TrimSpace(body)) > 0 {
		var result strapi_dto.SingleResponse
		if err := json.Unmarshal(body, &result); err != nil {
			c.Log.Warn("resourceClient.DeleteByID could not decode acknowledgement body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEntryIDKey, id),
				zap.Error(err),
			)
		} else {
			ack.Data = result.Data
		}
	}

	c.Log.Info("resourceClient.DeleteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collection),
		zap.String(constvars.LoggingEntryIDKey, id),
		zap.Int(constvars.LoggingStatusCodeKey, statusCode),
	)
	return ack, nil
}

func (c *resourceClient) buildURL(collection, id string, query *queries.Query) string {
	target := fmt.Sprintf("%s/%s", c.BaseUrl, collection)
	if id != "" {
		target = fmt.Sprintf("%s/%s", target, url.PathEscape(id))
	}
	if encoded := query.Encode(); encoded != "" {
		target = fmt.Sprintf("%s?%s", target, encoded)
	}
	return target
}

// send performs one HTTP exchange and maps every failure to a CustomError.
// It returns the raw body of a 2xx answer.
func (c *resourceClient) send(ctx context.Context, operation, collection, method, target string, payload []byte, params map[string]string) (int, []byte, error) {
	requestID := utils.RequestIDFromContext(ctx)

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			c.Log.Error("resourceClient.send outbound limiter refused request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCollectionKey, collection),
				zap.Error(err),
			)
			return 0, nil, exceptions.ErrStrapiThrottle(err, collection).WithOperation(operation, params)
		}
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		c.Log.Error("resourceClient.send error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, nil, exceptions.ErrCreateHTTPRequest(err).WithOperation(operation, params)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.HeaderBearerPrefix+c.ApiKey)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if payload != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("resourceClient.send error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingCollectionKey, collection),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, nil, exceptions.ErrServerDeadlineExceeded(err).WithOperation(operation, params)
		}
		return 0, nil, exceptions.ErrSendHTTPRequest(err).WithOperation(operation, params)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("resourceClient.send error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return resp.StatusCode, nil, exceptions.ErrReadResponse(err, collection).WithOperation(operation, params)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		var outcome strapi_dto.ErrorResponse
		backendMessage := ""
		if err := json.Unmarshal(bodyBytes, &outcome); err == nil && outcome.Error != nil {
			backendMessage = outcome.Error.Message
		}
		c.Log.Error("resourceClient.send backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingCollectionKey, collection),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingResponseKey, backendMessage),
		)
		return resp.StatusCode, nil, exceptions.ErrBackendRejected(resp.StatusCode, operation, collection, backendMessage).
			WithOperation(operation, params).
			WithPayload(bodyBytes)
	}

	return resp.StatusCode, bodyBytes, nil
}

func (c *resourceClient) decodeSingle(body []byte, operation, collection string, params map[string]string) (*strapi_dto.Entry, error) {
	var result strapi_dto.SingleResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, collection).WithOperation(operation, params).WithPayload(body)
	}
	if result.Data == nil {
		return nil, exceptions.ErrDecodeResponse(errors.New("response has no data"), collection).WithOperation(operation, params).WithPayload(body)
	}
	return result.Data, nil
}
