package aws

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eniorphan/internal/providers/aws/mocks"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

const (
	successRecord = `{"eventName":"ModifyNetworkInterfaceAttribute","requestParameters":{"networkInterfaceId":"eni-0123456789abcdef0","groupSet":{"items":[{"groupId":"sg-9"}]}}}`
	failedRecord  = `{"eventName":"ModifyNetworkInterfaceAttribute","errorCode":"Client.UnauthorizedOperation","errorMessage":"You are not authorized","requestParameters":{"networkInterfaceId":"eni-0123456789abcdef0","groupSet":{"items":[{"groupId":"sg-9"}]}}}`
)

func testAuditOptions() AuditOptions {
	return AuditOptions{
		Lookback: 24 * time.Hour,
		Now:      func() time.Time { return fixedNow },
	}
}

func TestFetchAuditEvents_WindowAndDecoding(t *testing.T) {
	mockClient := mocks.NewCloudTrailClientAPI(t)

	mockClient.On("LookupEvents", mock.Anything,
		mock.MatchedBy(func(input *cloudtrail.LookupEventsInput) bool {
			return len(input.LookupAttributes) == 1 &&
				input.LookupAttributes[0].AttributeKey == types.LookupAttributeKeyEventName &&
				aws.ToString(input.LookupAttributes[0].AttributeValue) == ModifyInterfaceAttributeEvent &&
				aws.ToTime(input.StartTime).Equal(fixedNow.Add(-24*time.Hour)) &&
				aws.ToTime(input.EndTime).Equal(fixedNow) &&
				input.NextToken == nil
		}), mock.Anything).
		Return(&cloudtrail.LookupEventsOutput{
			Events: []types.Event{
				{
					EventId:         aws.String("evt-1"),
					EventName:       aws.String(ModifyInterfaceAttributeEvent),
					EventTime:       aws.Time(fixedNow.Add(-time.Hour)),
					Username:        aws.String("alice"),
					CloudTrailEvent: aws.String(successRecord),
				},
				{
					EventId:         aws.String("evt-2"),
					EventName:       aws.String(ModifyInterfaceAttributeEvent),
					CloudTrailEvent: aws.String(failedRecord),
				},
			},
			NextToken: aws.String("next"),
		}, nil).Once()

	mockClient.On("LookupEvents", mock.Anything,
		mock.MatchedBy(func(input *cloudtrail.LookupEventsInput) bool {
			return aws.ToString(input.NextToken) == "next"
		}), mock.Anything).
		Return(&cloudtrail.LookupEventsOutput{
			Events: []types.Event{
				{EventId: aws.String("evt-3"), CloudTrailEvent: aws.String("{not json")},
				{EventId: aws.String("evt-4")},
			},
		}, nil).Once()

	service := NewAuditServiceWithClient(mockClient, testOptions(), testAuditOptions())
	events, err := service.FetchAuditEvents(context.Background(), testInterfaceID)

	require.NoError(t, err)
	require.Len(t, events, 4)

	assert.Equal(t, "evt-1", events[0].EventID)
	assert.Equal(t, "alice", events[0].Username)
	assert.Equal(t, fixedNow.Add(-time.Hour), events[0].EventTime)
	assert.Equal(t, successRecord, events[0].Payload)
	assert.False(t, events[0].HasError)
	assert.False(t, events[0].Malformed)

	assert.True(t, events[1].HasError, "errorCode marks a failed call")

	assert.True(t, events[2].Malformed, "undecodable payload")
	assert.True(t, events[3].Malformed, "missing payload")
	assert.Equal(t, "", events[3].EventName)
}

func TestFetchAuditEvents_EventNameFromPayload(t *testing.T) {
	event, err := toAuditEvent(types.Event{CloudTrailEvent: aws.String(successRecord)})
	require.NoError(t, err)
	assert.Equal(t, ModifyInterfaceAttributeEvent, event.EventName)
}

func TestToAuditEvent_MalformedRecords(t *testing.T) {
	tests := []struct {
		name    string
		payload *string
	}{
		{"missing record", nil},
		{"blank record", aws.String("   ")},
		{"invalid JSON", aws.String(`{"eventName":`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := toAuditEvent(types.Event{
				EventId:         aws.String("evt-1"),
				CloudTrailEvent: tt.payload,
			})

			require.Error(t, err)
			assert.True(t, event.Malformed)
			assert.True(t, IsErrorCategory(err, ErrMalformedInput))

			var awsErr *Error
			require.ErrorAs(t, err, &awsErr)
			assert.Equal(t, CloudTrailResourceType, awsErr.ResourceType)
			assert.Equal(t, "evt-1", awsErr.ResourceID)
		})
	}
}

func TestFetchAuditEvents_Error(t *testing.T) {
	mockClient := mocks.NewCloudTrailClientAPI(t)

	mockClient.On("LookupEvents", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "InvalidTimeRangeException"}).Once()

	service := NewAuditServiceWithClient(mockClient, testOptions(), testAuditOptions())
	events, err := service.FetchAuditEvents(context.Background(), testInterfaceID)

	assert.Nil(t, events)
	assert.True(t, IsErrorCategory(err, ErrInvalidInput))

	var awsErr *Error
	require.ErrorAs(t, err, &awsErr)
	assert.Equal(t, CloudTrailResourceType, awsErr.ResourceType)
	assert.Equal(t, testInterfaceID, awsErr.ResourceID)
}

func TestNewAuditServiceWithClient_Defaults(t *testing.T) {
	service := NewAuditServiceWithClient(nil, testOptions(), AuditOptions{Lookback: 365 * 24 * time.Hour})

	assert.Equal(t, DefaultAuditOptions().Lookback, service.audit.Lookback, "lookback beyond retention falls back to default")
	assert.NotNil(t, service.audit.Now)
}
