package insight

const greetingReply = "Hello! How can I help with your utility bills today? 💡"

const highUsageTips = "I notice your latest bill shows %s units consumed, which is quite high! Here are some energy-saving tips:\n\n" +
	"🔌 Unplug devices when not in use\n" +
	"💡 Switch to LED bulbs\n" +
	"🌡️ Set AC to 24°C or higher\n" +
	"🧺 Use cold water for washing\n" +
	"📱 Consider energy-efficient appliances"

const efficientUsageTips = "Great job keeping your energy consumption efficient! 🌱\n\n" +
	"Keep up the good work with these habits:\n" +
	"✅ Turn off lights when leaving rooms\n" +
	"✅ Use natural light during daytime\n" +
	"✅ Regular maintenance of appliances"

// billSummary args: subject, units, month, year, amount, avg units, avg amount, cost per unit.
const billSummary = "%s shows %s units consumed in %s %d for ₹%s.\n\n" +
	"Average consumption: %s units\n" +
	"Average amount: ₹%s\n" +
	"Cost per unit: ₹%s"

const noBillsForUtility = "No bills found for that utility type."

const noBillsYet = "I don't see any bills in your account yet. Add your first bill to get started! 📊"

const electricityTips = "💡 Electricity saving tips:\n\n" +
	"• Use power strips to easily turn off multiple devices\n" +
	"• Replace old appliances with Energy Star models\n" +
	"• Use ceiling fans instead of AC when possible\n" +
	"• Run dishwasher and washing machine with full loads"

const waterTips = "💧 Water saving tips:\n\n" +
	"• Fix leaky faucets immediately\n" +
	"• Install low-flow showerheads\n" +
	"• Turn off tap while brushing teeth\n" +
	"• Use dishwasher instead of hand washing"

const gasTips = "🔥 Gas saving tips:\n\n" +
	"• Lower water heater temperature to 120°F\n" +
	"• Use cold water for laundry when possible\n" +
	"• Seal windows and doors to prevent heat loss\n" +
	"• Maintain your heating system regularly"

const thanksReply = "You're welcome! Happy to help you save energy and money! 🌟"

const fallbackReply = "I can help you with utility bills and energy-saving tips! Ask me about electricity, water, or gas bills, or request energy-saving advice. 💡"
