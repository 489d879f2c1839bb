package validators

import "go.mongodb.org/mongo-driver/bson"

var RoomValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"facility_id",
			"name",
			"tariff",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"facility_id": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"description": bson.M{
				"bsonType":  "string",
				"maxLength": 500,
			},

			"tariff": bson.M{
				"bsonType": "object",
				"required": []string{
					"base_price",
					"base_duration_hours",
					"extra_hour_price",
					"extra_hour_weekend_price",
					"extra_person_price",
					"capacity_before_surcharge",
				},
				"properties": bson.M{
					"base_price": bson.M{
						"bsonType": "long",
						"minimum":  0,
					},
					"base_duration_hours": bson.M{
						"bsonType": "int",
						"minimum":  1,
					},
					"extra_hour_price": bson.M{
						"bsonType": "long",
						"minimum":  0,
					},
					"extra_hour_weekend_price": bson.M{
						"bsonType": "long",
						"minimum":  0,
					},
					"extra_person_price": bson.M{
						"bsonType": "long",
						"minimum":  0,
					},
					"capacity_before_surcharge": bson.M{
						"bsonType": "int",
						"minimum":  1,
					},
				},
			},
		},
	},
}
