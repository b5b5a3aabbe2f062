package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/sidepp-ar/docingest/constants"
	"github.com/sidepp-ar/docingest/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("filename").NotEmpty(),
		// hex sha256 of the byte payload; the idempotency key
		field.String("natural_key").NotEmpty().MinLen(64).MaxLen(64),
		field.String("doc_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypes...)),
		field.String("status").NotEmpty(),
		field.String("error_message").Optional().Nillable(),
		field.Time("processed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> at most ONE payroll batch / transfer
		edge.To("payroll_batch", PayrollBatch.Type).Unique(),
		edge.To("transfer", Transfer.Type).Unique(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		// concurrent upserts race on this; the unique index arbitrates
		index.Fields("natural_key").Unique(),
		index.Fields("doc_type", "created_at"),
	}
}
