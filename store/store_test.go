package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestConfigImplementsDialer(t *testing.T) {
	var _ Dialer = Config{}
}

func TestUpdateDocumentAppliesFixedFieldMerge(t *testing.T) {
	update := updateDocument()

	set, ok := update["$set"].(bson.M)
	require.True(t, ok, "update must be a single $set merge")

	// Two whole-object field replacements.
	assert.Equal(t, paxGroupDoc, set["paxGroup"])
	assert.Equal(t, paymentFunctionsDoc, set["paymentFunctions"])

	// One positional update touching every element of the orderItem array.
	assert.Equal(t, "CANCELLED", set["orderItem.$[].statusCode"])
	assert.Len(t, set, 3)
}

func TestPaxGroupPayloadLiterals(t *testing.T) {
	assert.Equal(t, "PG123", paxGroupDoc["paxGroupId"])
	assert.Equal(t, "Team Alpha", paxGroupDoc["paxGroupName"])
	assert.Equal(t, "5", paxGroupDoc["intendedPaxQty"])
	assert.Equal(t,
		bson.A{"contact1@example.com", "contact2@example.com"},
		paxGroupDoc["contactInfo"])
}

func TestPaymentFunctionsPayloadLiterals(t *testing.T) {
	functions, ok := paymentFunctionsDoc["paymentFunctions"].(bson.A)
	require.True(t, ok)
	require.Len(t, functions, 1)

	entry := functions[0].(bson.M)
	assoc := entry["orderAssociation"].(bson.M)
	assert.Equal(t, "ORDITM46", assoc["OrderItemRefID"])
	assert.Equal(t, "XB089279097", assoc["OrderRefID"])

	summary := entry["paymentProcessingSummary"].(bson.M)
	assert.Equal(t, 5533, summary["amount"])
	assert.Equal(t, "PAY05", summary["paymentID"])
	assert.Equal(t, "FAILED", summary["paymentStatusCode"])

	card := summary["paymentProcessingSummaryPaymentMethod"].(bson.M)["paymentCard"].(bson.M)
	assert.Equal(t, "JCB 16 digit", card["cardBrandCode"])
	assert.Equal(t, "Michael Archer", card["cardHolderName"])
	assert.Equal(t, "3584893897434748", card["maskedCardID"])
}
