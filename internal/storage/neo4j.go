package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"cognigraph/internal/graph"
)

// Neo4jStore mirrors the published dataset into a Neo4j instance so external
// graph tooling can query it. Node identity is the (type, name) pair; the
// relation label rides on the edge as a property because edge types in Cypher
// cannot be parameterized.
type Neo4jStore struct {
	driver   neo4j.DriverWithContext
	database string
}

func NewNeo4jStore(ctx context.Context, uri, user, password, database string) (*Neo4jStore, error) {
	if uri == "" {
		return nil, nil
	}
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("neo4j: init driver: %w", err)
	}
	vctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := driver.VerifyConnectivity(vctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4j: verify connectivity: %w", err)
	}
	return &Neo4jStore{driver: driver, database: database}, nil
}

func (s *Neo4jStore) Close(ctx context.Context) error {
	if s == nil || s.driver == nil {
		return nil
	}
	return s.driver.Close(ctx)
}

// Replace wipes and rewrites the mirrored graph inside one session. Writes
// happen only during the reload pipeline, never at query time.
func (s *Neo4jStore) Replace(ctx context.Context, version string, triples []graph.Triple) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if _, err := tx.Run(ctx, `MATCH (n:KG) DETACH DELETE n`, nil); err != nil {
			return nil, fmt.Errorf("clear mirrored graph: %w", err)
		}
		for i, t := range triples {
			params := map[string]any{
				"stype":       string(t.SubjectType),
				"sname":       t.SubjectName,
				"relation":    string(t.Relation),
				"otype":       string(t.ObjectType),
				"oname":       t.ObjectName,
				"source_type": t.SourceType,
				"source_link": t.SourceLink,
				"position":    i,
				"version":     version,
			}
			if t.SourceDate.IsZero() {
				params["source_date"] = nil
			} else {
				params["source_date"] = t.SourceDate.Format("2006-01-02")
			}
			_, err := tx.Run(ctx, `
MERGE (s:KG {type: $stype, name: $sname})
MERGE (o:KG {type: $otype, name: $oname})
CREATE (s)-[:REL {
  type: $relation, source_type: $source_type, source_link: $source_link,
  source_date: $source_date, position: $position, dataset_version: $version
}]->(o)`, params)
			if err != nil {
				return nil, fmt.Errorf("write triple %d: %w", i, err)
			}
		}
		return nil, nil
	})
	return err
}

// ListRows reads the mirrored dataset back as raw rows in position order, the
// same read contract the Postgres repo offers.
func (s *Neo4jStore) ListRows(ctx context.Context) ([]graph.Row, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database, AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	records, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, `
MATCH (s:KG)-[r:REL]->(o:KG)
RETURN s.type, s.name, r.type, o.type, o.name, r.source_type, r.source_link, r.source_date
ORDER BY r.position`, nil)
		if err != nil {
			return nil, err
		}
		return result.Collect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j: list triples: %w", err)
	}

	recs := records.([]*neo4j.Record)
	out := make([]graph.Row, 0, len(recs))
	for i, rec := range recs {
		row := graph.Row{Line: i + 1}
		row.XType = stringValue(rec.Values[0])
		row.XName = stringValue(rec.Values[1])
		row.Relation = stringValue(rec.Values[2])
		row.YType = stringValue(rec.Values[3])
		row.YName = stringValue(rec.Values[4])
		row.SourceType = stringValue(rec.Values[5])
		row.SourceLink = stringValue(rec.Values[6])
		row.SourceDate = stringValue(rec.Values[7])
		out = append(out, row)
	}
	return out, nil
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
