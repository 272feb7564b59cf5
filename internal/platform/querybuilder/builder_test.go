package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("teams").
		Where(Eq("sport_id", int64(2)), In("id", []int64{4, 5}), IsNull("deleted_at")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM teams WHERE sport_id = $1 AND id IN ($2, $3) AND deleted_at IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != int64(2) || args[2] != int64(5) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyIn(t *testing.T) {
	query, args, err := Select("*").From("matches").Where(In("tournament_id", []int64{})).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT * FROM matches WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("matches").
		Columns("team1_id", "team2_id").
		Values(int64(1), int64(2)).
		Values(int64(1), int64(3)).
		Returning("id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO matches (team1_id, team2_id) VALUES ($1, $2), ($3, $4) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Name    string `db:"name"`
		Icon    string `db:"icon"`
		Ignored string `db:"-"`
		hidden  string
	}

	query, args, err := InsertModel("sports", row{Name: "Voleibol", Icon: "v", hidden: "x"}).Returning("id").ToSQL()
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}
	if query != "INSERT INTO sports (name, icon) VALUES ($1, $2) RETURNING id" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != "Voleibol" {
		t.Fatalf("unexpected args: %+v", args)
	}

	query, _, err = InsertModel("sports", row{Name: "Voleibol", Icon: "v"}, "icon").ToSQL()
	if err != nil {
		t.Fatalf("build insert model query with skip: %v", err)
	}
	if query != "INSERT INTO sports (name) VALUES ($1)" {
		t.Fatalf("unexpected query: %s", query)
	}

	if _, _, err := InsertModel("sports", nil).ToSQL(); err == nil {
		t.Fatalf("expected error for nil model")
	}
}

func TestUpdateBuilder(t *testing.T) {
	type row struct {
		ID   int64  `db:"id"`
		Name string `db:"name"`
	}

	query, args, err := Update("sports").
		SetModel(row{ID: 9, Name: "new"}, "id").
		Set("max_players", 6).
		Where(Eq("id", int64(9))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE sports SET name = $1, max_players = $2 WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "new" || args[2] != int64(9) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateAndDeleteRequireWhere(t *testing.T) {
	if _, _, err := Update("sports").Set("name", "x").ToSQL(); err == nil {
		t.Fatalf("expected error for update without where")
	}
	if _, _, err := DeleteFrom("sports").ToSQL(); err == nil {
		t.Fatalf("expected error for delete without where")
	}

	query, args, err := DeleteFrom("team_players").Where(Eq("team_id", int64(1))).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM team_players WHERE team_id = $1" || len(args) != 1 {
		t.Fatalf("unexpected delete: %s %+v", query, args)
	}
}

func TestRawExpressionIsNotBound(t *testing.T) {
	query, args, err := Update("teams").
		Set("name", "Pumas").
		Set("updated_at", Raw("NOW()")).
		Where(Eq("id", int64(2))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}
	if query != "UPDATE teams SET name = $1, updated_at = NOW() WHERE id = $2" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
