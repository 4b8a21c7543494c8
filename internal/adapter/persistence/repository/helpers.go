package repository

import (
	"errors"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequestsTableName  = "service_requests"
	defaultEstimatesTableName = "billing_estimates"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requestsTableName() string {
	return getenvDefault("SERVICE_REQUESTS_TABLE", defaultRequestsTableName)
}

func estimatesTableName() string {
	return getenvDefault("BILLING_ESTIMATES_TABLE", defaultEstimatesTableName)
}

func intToNumber(v int) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(v)}
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// isTransactionConditionFailed reports whether a TransactWriteItems call was
// cancelled because one of its condition checks failed, i.e. a concurrent
// writer won the version race.
func isTransactionConditionFailed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
