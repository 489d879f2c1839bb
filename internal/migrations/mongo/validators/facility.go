package validators

import "go.mongodb.org/mongo-driver/bson"

var FacilityValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"city",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"city": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"address": bson.M{
				"bsonType":  "string",
				"maxLength": 200,
			},

			"timezone": bson.M{
				"bsonType":  "string",
				"maxLength": 64,
			},
		},
	},
}
