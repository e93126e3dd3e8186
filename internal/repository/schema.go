package repository

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS SalesOrderHeader (
		SalesOrderID INTEGER PRIMARY KEY AUTOINCREMENT,
		SalesOrderNumber TEXT UNIQUE,
		OrderDate TEXT,
		DueDate TEXT,
		ShipDate TEXT,
		Status INTEGER DEFAULT 1,
		PurchaseOrderNumber TEXT,
		CustomerID INTEGER,
		CustomerName TEXT,
		CustomerCompany TEXT,
		CustomerAddress TEXT,
		CustomerCityStateZip TEXT,
		CustomerPhone TEXT,
		VendorName TEXT,
		VendorCompany TEXT,
		VendorAddress TEXT,
		VendorCityStateZip TEXT,
		VendorPhone TEXT,
		VendorFax TEXT,
		VendorWebsite TEXT,
		SalesPerson TEXT,
		ShipToName TEXT,
		ShipToCompany TEXT,
		ShipToAddress TEXT,
		ShipToCityStateZip TEXT,
		ShipToPhone TEXT,
		SubTotal REAL DEFAULT 0,
		TaxRate REAL DEFAULT 0,
		TaxAmt REAL DEFAULT 0,
		ShippingHandling REAL DEFAULT 0,
		Other REAL DEFAULT 0,
		TotalDue REAL DEFAULT 0,
		Terms TEXT,
		ShipVia TEXT,
		FOB TEXT,
		CreatedAt TEXT DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS SalesOrderDetail (
		SalesOrderDetailID INTEGER PRIMARY KEY AUTOINCREMENT,
		SalesOrderID INTEGER,
		ItemNumber TEXT,
		Description TEXT,
		Quantity INTEGER,
		UnitPrice REAL,
		LineTotal REAL,
		FOREIGN KEY (SalesOrderID) REFERENCES SalesOrderHeader(SalesOrderID) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_detail_order ON SalesOrderDetail(SalesOrderID)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS "SalesOrderHeader" (
		"SalesOrderID" BIGSERIAL PRIMARY KEY,
		"SalesOrderNumber" TEXT UNIQUE,
		"OrderDate" TEXT,
		"DueDate" TEXT,
		"ShipDate" TEXT,
		"Status" BIGINT DEFAULT 1,
		"PurchaseOrderNumber" TEXT,
		"CustomerID" BIGINT,
		"CustomerName" TEXT,
		"CustomerCompany" TEXT,
		"CustomerAddress" TEXT,
		"CustomerCityStateZip" TEXT,
		"CustomerPhone" TEXT,
		"VendorName" TEXT,
		"VendorCompany" TEXT,
		"VendorAddress" TEXT,
		"VendorCityStateZip" TEXT,
		"VendorPhone" TEXT,
		"VendorFax" TEXT,
		"VendorWebsite" TEXT,
		"SalesPerson" TEXT,
		"ShipToName" TEXT,
		"ShipToCompany" TEXT,
		"ShipToAddress" TEXT,
		"ShipToCityStateZip" TEXT,
		"ShipToPhone" TEXT,
		"SubTotal" DOUBLE PRECISION DEFAULT 0,
		"TaxRate" DOUBLE PRECISION DEFAULT 0,
		"TaxAmt" DOUBLE PRECISION DEFAULT 0,
		"ShippingHandling" DOUBLE PRECISION DEFAULT 0,
		"Other" DOUBLE PRECISION DEFAULT 0,
		"TotalDue" DOUBLE PRECISION DEFAULT 0,
		"Terms" TEXT,
		"ShipVia" TEXT,
		"FOB" TEXT,
		"CreatedAt" TEXT DEFAULT to_char(now() AT TIME ZONE 'utc', 'YYYY-MM-DD HH24:MI:SS')
	)`,
	`CREATE TABLE IF NOT EXISTS "SalesOrderDetail" (
		"SalesOrderDetailID" BIGSERIAL PRIMARY KEY,
		"SalesOrderID" BIGINT REFERENCES "SalesOrderHeader"("SalesOrderID") ON DELETE CASCADE,
		"ItemNumber" TEXT,
		"Description" TEXT,
		"Quantity" DOUBLE PRECISION,
		"UnitPrice" DOUBLE PRECISION,
		"LineTotal" DOUBLE PRECISION
	)`,
	`CREATE INDEX IF NOT EXISTS idx_detail_order ON "SalesOrderDetail"("SalesOrderID")`,
}
