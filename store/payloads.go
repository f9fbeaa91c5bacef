package store

import "go.mongodb.org/mongo-driver/bson"

// Fixed payloads applied by every update task. The values are literals from
// the order domain and are the same for every matched document.

var paxGroupDoc = bson.M{
	"contactInfo":    bson.A{"contact1@example.com", "contact2@example.com"},
	"paxGroupId":     "PG123",
	"paxGroupName":   "Team Alpha",
	"intendedPaxQty": "5",
}

var paymentFunctionsDoc = bson.M{
	"paymentFunctions": bson.A{
		bson.M{
			"orderAssociation": bson.M{
				"OrderItemRefID": "ORDITM46",
				"OrderRefID":     "XB089279097",
			},
			"paymentProcessingSummary": bson.M{
				"amount":                    5533,
				"paymentCommitmentDateTime": "1986-11-10T19:09:51",
				"paymentID":                 "PAY05",
				"paymentProcessingSummaryPaymentMethod": bson.M{
					"paymentCard": bson.M{
						"cardBrandCode":  "JCB 16 digit",
						"cardHolderName": "Michael Archer",
						"maskedCardID":   "3584893897434748",
					},
				},
				"paymentStatusCode": "FAILED",
			},
		},
	},
}

// updateDocument builds the update applied by every update task: two
// whole-object field replacements plus a positional update setting the status
// code on every element of the orderItem array.
func updateDocument() bson.M {
	return bson.M{
		"$set": bson.M{
			"paxGroup":                 paxGroupDoc,
			"paymentFunctions":         paymentFunctionsDoc,
			"orderItem.$[].statusCode": "CANCELLED",
		},
	}
}
