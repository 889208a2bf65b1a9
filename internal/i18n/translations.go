package i18n

var storefrontTranslations = map[string]Localized{
	// ナビゲーション
	"home":       {En: "Home", Ta: "முகப்பு"},
	"products":   {En: "Products", Ta: "பொருட்கள்"},
	"categories": {En: "Categories", Ta: "வகைகள்"},
	"about":      {En: "About Us", Ta: "எங்களை பற்றி"},
	"contact":    {En: "Contact", Ta: "தொடர்பு"},

	// ヒーロー
	"heroTitle":       {En: "Premium Quality Groceries", Ta: "தரமான மளிகை பொருட்கள்"},
	"heroSubtitle":    {En: "Delivered Fresh to Your Doorstep", Ta: "உங்கள் வீட்டு வாசலில் புதிதாக டெலிவரி"},
	"heroDescription": {En: "Experience the finest selection of premium groceries, authentic spices, and quality essentials. Order via WhatsApp for quick and easy service.", Ta: "தரமான மளிகை பொருட்கள், நம்பகமான மசாலா மற்றும் தரமான அத்தியாவசியப் பொருட்களின் சிறந்த தேர்வை அனுபவியுங்கள். விரைவான மற்றும் எளிதான சேவைக்கு WhatsApp வழியாக ஆர்டர் செய்யுங்கள்."},
	"shopNow":         {En: "Shop Now", Ta: "இப்போது வாங்கு"},
	"exploreProducts": {En: "Explore Products", Ta: "பொருட்களை ஆராயுங்கள்"},

	// カテゴリ
	"food-groceries": {En: "Food & Groceries", Ta: "உணவு & மளிகை"},
	"households":     {En: "Households", Ta: "வீட்டு உபயோக பொருட்கள்"},
	"personal-care":  {En: "Personal Care", Ta: "தனிநபர் பராமரிப்பு"},
	"health-care":    {En: "Health Care", Ta: "சுகாதார பராமரிப்பு"},

	// 商品
	"addToCart":   {En: "Add to Cart", Ta: "கூடையில் சேர்"},
	"buyNow":      {En: "Buy Now", Ta: "இப்போது வாங்கு"},
	"inStock":     {En: "In Stock", Ta: "கையிருப்பு உள்ளது"},
	"outOfStock":  {En: "Out of Stock", Ta: "கையிருப்பு இல்லை"},
	"quantity":    {En: "Quantity", Ta: "அளவு"},
	"viewDetails": {En: "View Details", Ta: "விவரங்களைக் காண்க"},
	"quickView":   {En: "Quick View", Ta: "விரைவு பார்வை"},
	"selectSize":  {En: "Select Size", Ta: "அளவைத் தேர்ந்தெடுக்கவும்"},
	"product":     {En: "Product", Ta: "பொருள்"},

	// カート
	"cart":          {En: "Cart", Ta: "கூடை"},
	"yourCart":      {En: "Your Cart", Ta: "உங்கள் கூடை"},
	"cartEmpty":     {En: "Your cart is empty", Ta: "உங்கள் கூடை காலியாக உள்ளது"},
	"startShopping": {En: "Start shopping to add items", Ta: "பொருட்களைச் சேர்க்க ஷாப்பிங் தொடங்குங்கள்"},
	"subtotal":      {En: "Subtotal", Ta: "கூட்டுத்தொகை"},
	"total":         {En: "Total", Ta: "மொத்தம்"},
	"items":         {En: "items", Ta: "பொருட்கள்"},
	"clearCart":     {En: "Clear Cart", Ta: "கூடையை காலி செய்"},
	"remove":        {En: "Remove", Ta: "நீக்கு"},

	// 特長
	"whyChooseUs":        {En: "Why Choose Us", Ta: "ஏன் எங்களைத் தேர்வு செய்ய வேண்டும்"},
	"freshProducts":      {En: "Quality Products", Ta: "தரமான பொருட்கள்"},
	"freshProductsDesc":  {En: "Handpicked quality groceries from trusted suppliers", Ta: "நம்பகமான சப்ளையர்களிடமிருந்து கையால் தேர்ந்தெடுக்கப்பட்ட தரமான மளிகை"},
	"qualityAssured":     {En: "Quality Assured", Ta: "தரம் உறுதி"},
	"qualityAssuredDesc": {En: "Every item checked for premium quality", Ta: "ஒவ்வொரு பொருளும் உயர்தரத்திற்காக சோதிக்கப்படுகிறது"},
	"fastResponse":       {En: "Fast Response", Ta: "விரைவான பதில்"},
	"fastResponseDesc":   {En: "Quick WhatsApp support and order processing", Ta: "விரைவான WhatsApp ஆதரவு மற்றும் ஆர்டர் செயலாக்கம்"},
	"easyOrdering":       {En: "Easy Ordering", Ta: "எளிதான ஆர்டர்"},
	"easyOrderingDesc":   {En: "Simple cart and WhatsApp checkout", Ta: "எளிய கூடை மற்றும் WhatsApp செக்அவுட்"},

	// セクション
	"featuredProducts": {En: "Featured Products", Ta: "சிறப்பு பொருட்கள்"},
	"newArrivals":      {En: "New Arrivals", Ta: "புதிய வரவுகள்"},
	"shopByCategory":   {En: "Shop by Category", Ta: "வகை வாரியாக வாங்கு"},
	"viewAll":          {En: "View All", Ta: "அனைத்தையும் காண்க"},

	// フッター
	"followUs":          {En: "Follow Us", Ta: "எங்களை பின்தொடருங்கள்"},
	"businessHours":     {En: "Business Hours", Ta: "வணிக நேரம்"},
	"monday":            {En: "Monday - Saturday", Ta: "திங்கள் - சனி"},
	"sunday":            {En: "Sunday", Ta: "ஞாயிறு"},
	"closed":            {En: "Closed", Ta: "மூடப்பட்டது"},
	"quickLinks":        {En: "Quick Links", Ta: "விரைவு இணைப்புகள்"},
	"allRightsReserved": {En: "All rights reserved", Ta: "அனைத்து உரிமைகளும் பாதுகாக்கப்பட்டவை"},

	// 検索
	"searchProducts": {En: "Search products...", Ta: "பொருட்களைத் தேடு..."},
	"noResults":      {En: "No products found", Ta: "பொருட்கள் இல்லை"},
	"searchResults":  {En: "Search Results", Ta: "தேடல் முடிவுகள்"},

	// WhatsAppメッセージ
	"whatsappGreeting":       {En: "Hello! I'd like to purchase the following items:", Ta: "வணக்கம்! நான் பின்வரும் பொருட்களை வாங்க விரும்புகிறேன்:"},
	"whatsappGreetingSingle": {En: "Hello! I'd like to purchase:", Ta: "வணக்கம்! நான் வாங்க விரும்புகிறேன்:"},
	"orderDetails":           {En: "Order Details", Ta: "ஆர்டர் விவரங்கள்"},
	"orderSummary":           {En: "Order Summary", Ta: "ஆர்டர் சுருக்கம்"},
	"totalAmount":            {En: "Total Amount", Ta: "மொத்த தொகை"},
	"confirmOrder":           {En: "Please confirm my order and let me know delivery details.", Ta: "என் ஆர்டரை உறுதிப்படுத்தி, டெலிவரி விவரங்களை தெரிவிக்கவும்."},
	"thankYou":               {En: "Thank you!", Ta: "நன்றி!"},
}
