package filter_test

// Fixtures shared by the threshold tests: a 20-colour CIEDE2000 distance
// matrix and a 10×10 asymmetric table of ranked scores.

var distance20 = [][]float64{
	{0, 3.47, 5.26, 48.58, 87.21, 18.35, 28.32, 54.1, 89.11, 99.64, 75.17, 84.69, 86.27, 101.16, 50.67, 92.35, 50.12, 113.14, 39.77, 103.74},
	{3.47, 0, 1.84, 46.62, 85.37, 15.79, 24.86, 50.63, 85.64, 96.17, 72.92, 83.89, 85.69, 98.67, 48.96, 90.59, 48.43, 111.75, 38.45, 102.33},
	{5.26, 1.84, 0, 46.1, 84.91, 14.97, 23.06, 48.86, 83.87, 94.41, 71.45, 83.09, 84.97, 97.78, 48.08, 90.19, 47.92, 110.92, 37.49, 101.49},
	{48.58, 46.62, 46.1, 0, 42.99, 31.42, 40.8, 47.75, 72.82, 80.99, 97.9, 121.22, 124.59, 59.97, 52.16, 48.12, 22.93, 133.3, 75.43, 124.63},
	{87.21, 85.37, 84.91, 42.99, 0, 71.42, 77.13, 74.48, 84.62, 89.28, 126.85, 152.82, 158.07, 28.3, 92.45, 5.86, 61.36, 145.92, 108.52, 138.82},
	{18.35, 15.79, 14.97, 31.42, 71.42, 0, 18.92, 41.61, 75.8, 85.97, 76.4, 93.63, 96.08, 84.74, 42.55, 76.77, 34.79, 116.44, 47.43, 107.14},
	{28.32, 24.86, 23.06, 40.8, 77.13, 18.92, 0, 25.82, 60.85, 71.4, 58.92, 80.84, 84.08, 84.24, 43.08, 82.89, 44.1, 104.13, 36.71, 94.82},
	{54.1, 50.63, 48.86, 47.75, 74.48, 41.61, 25.82, 0, 35.04, 45.58, 55.44, 87.31, 91.77, 73.19, 51.24, 80.28, 52.15, 102.87, 51.33, 94.28},
	{89.11, 85.64, 83.87, 72.82, 84.62, 75.8, 60.85, 35.04, 0, 10.72, 67.66, 105.29, 110.74, 71.58, 77.03, 89.61, 77.57, 109.76, 80.21, 102.95},
	{99.64, 96.17, 94.41, 80.99, 89.28, 85.97, 71.4, 45.58, 10.72, 0, 75.53, 113.62, 119.11, 73.68, 85.14, 93.91, 85.43, 115.87, 90.57, 109.61},
	{75.17, 72.92, 71.45, 97.9, 126.85, 76.4, 58.92, 55.44, 67.66, 75.53, 0, 38.68, 43.9, 123.37, 82.72, 132.63, 99.28, 75.94, 40.42, 68.04},
	{84.69, 83.89, 83.09, 121.22, 152.82, 93.63, 80.84, 87.31, 105.29, 113.62, 38.68, 0, 10.24, 153.11, 104.81, 158.5, 122.6, 73.12, 47.05, 66.28},
	{86.27, 85.69, 84.97, 124.59, 158.07, 96.08, 84.08, 91.77, 110.74, 119.11, 43.9, 10.24, 0, 159.43, 104.33, 163.79, 124.25, 83.11, 50.94, 76.36},
	{101.16, 98.67, 97.78, 59.97, 28.3, 84.74, 84.24, 73.19, 71.58, 73.68, 123.37, 153.11, 159.43, 0, 103.15, 29.52, 77.42, 138.46, 113.25, 132.33},
	{50.67, 48.96, 48.08, 52.16, 92.45, 42.55, 43.08, 51.24, 77.03, 85.14, 82.72, 104.81, 104.33, 103.15, 0, 97.53, 34.04, 143.89, 69.3, 134.54},
	{92.35, 90.59, 90.19, 48.12, 5.86, 76.77, 82.89, 80.28, 89.61, 93.91, 132.63, 158.5, 163.79, 29.52, 97.53, 0, 65.95, 150.44, 114.13, 143.49},
	{50.12, 48.43, 47.92, 22.93, 61.36, 34.79, 44.1, 52.15, 77.57, 85.43, 99.28, 122.6, 124.25, 77.42, 34.04, 65.95, 0, 146.14, 79.03, 137.06},
	{113.14, 111.75, 110.92, 133.3, 145.92, 116.44, 104.13, 102.87, 109.76, 115.87, 75.94, 73.12, 83.11, 138.46, 143.89, 150.44, 146.14, 0, 80.56, 9.53},
	{39.77, 38.45, 37.49, 75.43, 108.52, 47.43, 36.71, 51.33, 80.21, 90.57, 40.42, 47.05, 50.94, 113.25, 69.3, 114.13, 79.03, 80.56, 0, 71.1},
	{103.74, 102.33, 101.49, 124.63, 138.82, 107.14, 94.82, 94.28, 102.95, 109.61, 68.04, 66.28, 76.36, 132.33, 134.54, 143.49, 137.06, 9.53, 71.1, 0},
}

var scores10 = [][]float64{
	{0, 3.47, 5.26, 48.58, 87.21, 18.35, 28.32, 54.1, 89.11, 99.64},
	{3.47, 0, 1.84, 46.62, 85.37, 15.79, 24.86, 50.63, 85.64, 96.17},
	{60.85, 35.04, 0, 10.72, 67.66, 105.29, 110.74, 71.58, 77.03, 89.61},
	{71.4, 45.58, 10.72, 0, 75.53, 113.62, 119.11, 73.68, 85.14, 93.91},
	{87.31, 105.29, 113.62, 38.68, 0, 10.24, 153.11, 104.81, 158.5, 122.6},
	{91.77, 110.74, 119.11, 43.9, 10.24, 0, 159.43, 104.33, 163.79, 124.25},
	{93.91, 132.63, 158.5, 163.79, 29.52, 97.53, 0, 65.95, 150.44, 114.13},
	{85.43, 99.28, 122.6, 124.25, 77.42, 34.04, 65.95, 0, 146.14, 79.03},
	{40.42, 47.05, 50.94, 113.25, 69.3, 114.13, 79.03, 80.56, 0, 71.1},
	{68.04, 66.28, 76.36, 132.33, 134.54, 143.49, 137.06, 9.53, 71.1, 0},
}

// below12Of20 lists the cells of distance20 strictly below 12, row-major.
var below12Of20 = pairsOf([][2]int{
	{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1},
	{2, 2}, {3, 3}, {4, 4}, {4, 15}, {5, 5}, {6, 6}, {7, 7}, {8, 8},
	{8, 9}, {9, 8}, {9, 9}, {10, 10}, {11, 11}, {11, 12}, {12, 11}, {12, 12},
	{13, 13}, {14, 14}, {15, 4}, {15, 15}, {16, 16}, {17, 17}, {17, 19}, {18, 18},
	{19, 17}, {19, 19},
})

// above12Of10 lists the cells of scores10 strictly above 12, by descending
// value with row-major tie-breaking.
var above12Of10 = pairsOf([][2]int{
	{5, 8}, {6, 3}, {5, 6}, {4, 8}, {6, 2}, {4, 6}, {6, 8}, {7, 8},
	{9, 5}, {9, 6}, {9, 4}, {6, 1}, {9, 3}, {5, 9}, {7, 3}, {4, 9},
	{7, 2}, {3, 6}, {5, 2}, {6, 9}, {8, 5}, {3, 5}, {4, 2}, {8, 3},
	{2, 6}, {5, 1}, {2, 5}, {4, 1}, {4, 7}, {5, 7}, {0, 9}, {7, 1},
	{6, 5}, {1, 9}, {3, 9}, {6, 0}, {5, 0}, {2, 9}, {0, 8}, {4, 0},
	{0, 4}, {1, 8}, {7, 0}, {1, 4}, {3, 8}, {8, 7}, {7, 9}, {8, 6},
	{7, 4}, {2, 8}, {9, 2}, {3, 4}, {3, 7}, {2, 7}, {3, 0}, {8, 9},
	{9, 8}, {8, 4}, {9, 0}, {2, 4}, {9, 1}, {6, 7}, {7, 6}, {2, 0},
	{0, 7}, {8, 2}, {1, 7}, {0, 3}, {8, 1}, {1, 3}, {3, 1}, {5, 3},
	{8, 0}, {4, 3}, {2, 1}, {7, 5}, {6, 4}, {0, 6}, {1, 6}, {0, 5},
	{1, 5},
})
