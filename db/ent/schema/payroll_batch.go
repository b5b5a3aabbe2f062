package schema

import (
	"regexp"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

var rePeriod = regexp.MustCompile(`^\d{2}/\d{4}$`)

type PayrollBatch struct{ ent.Schema }

func (PayrollBatch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "payroll_batches"},
	}
}

func (PayrollBatch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.String("period").NotEmpty().
			Match(rePeriod),
		field.Bool("period_fallback").Default(false),
		field.Float("total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
	}
}

func (PayrollBatch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("payroll_batch").
			Field("document_id").
			Required().
			Unique(),
		edge.To("entries", PayrollEntry.Type),
	}
}

func (PayrollBatch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id").Unique(),
		index.Fields("period"),
	}
}
