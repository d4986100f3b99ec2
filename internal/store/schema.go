package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS grants (
    grant_id             TEXT PRIMARY KEY,
    grant_name           TEXT NOT NULL,
    funder_name          TEXT NOT NULL,
    funder_type          TEXT,
    total_amount         REAL NOT NULL,
    start_date           TEXT NOT NULL,
    end_date             TEXT NOT NULL,
    status               TEXT,
    grant_officer        TEXT,
    purpose              TEXT,
    reporting_frequency  TEXT
);

CREATE TABLE IF NOT EXISTS budget_categories (
    category_id          TEXT PRIMARY KEY,
    grant_id             TEXT NOT NULL REFERENCES grants(grant_id) ON DELETE CASCADE,
    category_name        TEXT NOT NULL,
    budgeted_amount      REAL NOT NULL,
    spent_amount         REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS expenses (
    expense_id           TEXT PRIMARY KEY,
    grant_id             TEXT NOT NULL REFERENCES grants(grant_id) ON DELETE CASCADE,
    category_id          TEXT NOT NULL REFERENCES budget_categories(category_id) ON DELETE CASCADE,
    expense_date         TEXT NOT NULL,
    vendor               TEXT,
    description          TEXT,
    amount               REAL NOT NULL,
    approved_by          TEXT
);

CREATE TABLE IF NOT EXISTS deliverables (
    deliverable_id       TEXT PRIMARY KEY,
    grant_id             TEXT NOT NULL REFERENCES grants(grant_id) ON DELETE CASCADE,
    deliverable_name     TEXT NOT NULL,
    due_date             TEXT NOT NULL,
    status               TEXT,
    completion_date      TEXT,
    notes                TEXT
);

CREATE TABLE IF NOT EXISTS outcome_metrics (
    metric_id            TEXT PRIMARY KEY,
    grant_id             TEXT NOT NULL REFERENCES grants(grant_id) ON DELETE CASCADE,
    metric_name          TEXT NOT NULL,
    target_value         REAL NOT NULL,
    current_value        REAL NOT NULL DEFAULT 0,
    measurement_period   TEXT,
    unit_of_measure      TEXT
);

CREATE TABLE IF NOT EXISTS participants (
    participant_id       TEXT PRIMARY KEY,
    grant_id             TEXT NOT NULL REFERENCES grants(grant_id) ON DELETE CASCADE,
    enrollment_date      TEXT NOT NULL,
    age_group            TEXT,
    demographic_category TEXT,
    status               TEXT,
    completion_date      TEXT
);

CREATE TABLE IF NOT EXISTS reports (
    report_id            TEXT PRIMARY KEY,
    grant_id             TEXT NOT NULL REFERENCES grants(grant_id) ON DELETE CASCADE,
    report_type          TEXT NOT NULL,
    due_date             TEXT NOT NULL,
    submission_date      TEXT,
    status               TEXT,
    submitted_by         TEXT
);

CREATE TABLE IF NOT EXISTS staff_allocations (
    allocation_id        TEXT PRIMARY KEY,
    grant_id             TEXT NOT NULL REFERENCES grants(grant_id) ON DELETE CASCADE,
    staff_name           TEXT NOT NULL,
    role                 TEXT,
    fte_percentage       REAL NOT NULL,
    salary_allocation    REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_categories_grant ON budget_categories(grant_id);
CREATE INDEX IF NOT EXISTS idx_expenses_grant ON expenses(grant_id);
CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(expense_date);
CREATE INDEX IF NOT EXISTS idx_deliverables_grant ON deliverables(grant_id);
CREATE INDEX IF NOT EXISTS idx_reports_grant ON reports(grant_id);
CREATE INDEX IF NOT EXISTS idx_participants_grant ON participants(grant_id);
`
