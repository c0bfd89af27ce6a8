package aws

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail/types"

	"eniorphan/internal/models"
)

// ModifyInterfaceAttributeEvent is the CloudTrail event recorded for
// security-group changes on a network interface.
const ModifyInterfaceAttributeEvent = "ModifyNetworkInterfaceAttribute"

// MaxLookback is the CloudTrail event history retention.
const MaxLookback = 90 * 24 * time.Hour

// AuditOptions controls the audit trail lookup
type AuditOptions struct {
	// Lookback bounds how far back events are searched
	Lookback time.Duration
	// Now returns the end of the lookup window; defaults to time.Now
	Now func() time.Time
}

// DefaultAuditOptions returns a seven day lookback window
func DefaultAuditOptions() AuditOptions {
	return AuditOptions{
		Lookback: 7 * 24 * time.Hour,
		Now:      time.Now,
	}
}

// AuditService handles interactions with the CloudTrail event history
type AuditService struct {
	client CloudTrailClientAPI
	opts   ServiceOptions
	audit  AuditOptions
}

// NewAuditServiceWithClient creates a new AuditService with a provided client
func NewAuditServiceWithClient(client CloudTrailClientAPI, opts ServiceOptions, audit AuditOptions) *AuditService {
	opts.Logger = opts.Logger.WithName("audit-service")
	if audit.Now == nil {
		audit.Now = time.Now
	}
	if audit.Lookback <= 0 || audit.Lookback > MaxLookback {
		audit.Lookback = DefaultAuditOptions().Lookback
	}
	return &AuditService{
		client: client,
		opts:   opts,
		audit:  audit,
	}
}

// cloudTrailRecord holds the fields of a CloudTrail record we inspect
type cloudTrailRecord struct {
	EventName    string `json:"eventName"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// FetchAuditEvents returns the ModifyNetworkInterfaceAttribute events recorded
// in the lookback window, newest first. The events are not filtered for
// interfaceID; that is left to the diagnosis.
func (s *AuditService) FetchAuditEvents(ctx context.Context, interfaceID string) ([]models.AuditEvent, error) {
	end := s.audit.Now()
	start := end.Add(-s.audit.Lookback)

	log := s.opts.Logger.WithValues("eniID", interfaceID, "startTime", start, "endTime", end)
	log.V(1).Info("Looking up audit events")

	paginator := cloudtrail.NewLookupEventsPaginator(s.client, &cloudtrail.LookupEventsInput{
		LookupAttributes: []types.LookupAttribute{
			{
				AttributeKey:   types.LookupAttributeKeyEventName,
				AttributeValue: aws.String(ModifyInterfaceAttributeEvent),
			},
		},
		StartTime: aws.Time(start),
		EndTime:   aws.Time(end),
	})

	events := make([]models.AuditEvent, 0)
	malformed := 0
	for paginator.HasMorePages() {
		var page *cloudtrail.LookupEventsOutput
		err := withRetry(ctx, s.opts, call{
			operation:    "lookup audit events",
			resourceType: CloudTrailResourceType,
			resourceID:   interfaceID,
		}, func() error {
			var err error
			page, err = paginator.NextPage(ctx)
			return err
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range page.Events {
			event, err := toAuditEvent(raw)
			if err != nil {
				malformed++
				var awsErr *Error
				if errors.As(err, &awsErr) {
					log.V(1).Info("Audit record could not be decoded, marking it malformed",
						"eventID", event.EventID,
						"category", awsErr.Category,
						"error", err.Error())
				}
			}
			events = append(events, event)
		}
	}

	log.V(1).Info("Looked up audit events", "events", len(events), "malformed", malformed)
	return events, nil
}

// decodeRecord parses the JSON record CloudTrail attaches to an event. A record
// that cannot be parsed yields an ErrMalformedInput error.
func decodeRecord(eventID, payload string) (cloudTrailRecord, error) {
	var record cloudTrailRecord
	if strings.TrimSpace(payload) == "" {
		return record, NewAWSError(ErrMalformedInput, CloudTrailResourceType, eventID,
			"empty CloudTrail record", nil)
	}
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return record, NewAWSError(ErrMalformedInput, CloudTrailResourceType, eventID,
			"undecodable CloudTrail record", err)
	}
	return record, nil
}

// toAuditEvent converts a CloudTrail event to the domain model. A record that
// cannot be decoded is kept but marked Malformed, and the decode error is
// returned alongside it.
func toAuditEvent(raw types.Event) (models.AuditEvent, error) {
	event := models.AuditEvent{
		EventID:   aws.ToString(raw.EventId),
		EventName: aws.ToString(raw.EventName),
		EventTime: aws.ToTime(raw.EventTime),
		Username:  aws.ToString(raw.Username),
		Payload:   aws.ToString(raw.CloudTrailEvent),
	}

	record, err := decodeRecord(event.EventID, event.Payload)
	if err != nil {
		event.Malformed = true
		return event, err
	}

	event.HasError = record.ErrorCode != "" || record.ErrorMessage != ""
	if event.EventName == "" {
		event.EventName = record.EventName
	}
	return event, nil
}
