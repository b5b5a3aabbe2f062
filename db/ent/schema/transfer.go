package schema

import (
	"errors"
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

var (
	reCBU  = regexp.MustCompile(`^[0-9]{22}$`)
	errCBU = errors.New("invalid account identifier")
)

type Transfer struct{ ent.Schema }

func (Transfer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "transfers"},
	}
}

func (Transfer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.Float("amount").
			Positive().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("currency").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("source_account_id").Optional().Nillable().
			Validate(cbuValidator),
		field.String("dest_account_id").Optional().Nillable().
			Validate(cbuValidator),
		field.String("reference").Optional().Nillable(),
		field.Time("operation_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Bool("date_fallback").Default(false),
	}
}

func cbuValidator(s string) error {
	if s == "" || reCBU.MatchString(s) {
		return nil
	}
	return errCBU
}

func (Transfer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("transfer").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (Transfer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id").Unique(),
		index.Fields("operation_date"),
	}
}
